package server

const viewerHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <style>
    :root {
      color-scheme: light;
      --surface: rgba(255,255,255,0.92);
      --border: rgba(15,23,42,0.12);
      --text: #0f172a;
      --muted: rgba(15,23,42,0.62);
      --accent: #2563eb;
      --success: #15803d;
      --warning: #b45309;
      --danger: #b91c1c;
    }
    * { box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      margin: 0;
      min-height: 100vh;
      padding: 32px 40px 64px;
      background: radial-gradient(circle at 20% 20%, #ffffff, #e9edf5 45%, #dce3f1);
      color: var(--text);
    }
    .chrome { max-width: 1500px; margin: 0 auto; }
    header { display:flex; justify-content:space-between; align-items:flex-start; gap:1rem; margin-bottom:20px; }
    h1 { font-size:1.9rem; font-weight:600; letter-spacing:-0.03em; margin:0; }
    .subtitle { color:var(--muted); margin:0.2rem 0 0; font-size:0.95rem; }
    .banner { border-radius:12px; padding:0.6rem 1rem; margin-bottom:16px; font-size:0.95rem; }
    .banner.error { background:rgba(185,28,28,0.08); color:var(--danger); border:1px solid rgba(185,28,28,0.25); }
    .banner.loading { background:rgba(37,99,235,0.08); color:var(--accent); border:1px solid rgba(37,99,235,0.25); }
    nav.tabs { display:flex; flex-wrap:wrap; gap:6px; margin-bottom:18px; }
    nav.tabs a {
      text-decoration:none; color:var(--muted); padding:0.45rem 0.95rem;
      border-radius:999px; border:1px solid transparent; font-weight:500;
    }
    nav.tabs a.active { color:var(--accent); background:rgba(37,99,235,0.1); border-color:rgba(37,99,235,0.25); }
    .toolbar { display:flex; flex-wrap:wrap; gap:10px; align-items:center; margin-bottom:18px; }
    .toolbar select, .toolbar input[type=text] {
      padding:0.45rem 0.7rem; border-radius:10px; border:1px solid var(--border);
      background:var(--surface); font-size:0.9rem;
    }
    .toolbar .modes a { text-decoration:none; color:var(--muted); padding:0.35rem 0.8rem; border-radius:8px; }
    .toolbar .modes a.active { color:var(--accent); background:rgba(37,99,235,0.1); }
    .toolbar button {
      padding:0.45rem 0.9rem; border-radius:10px; border:1px solid var(--border);
      background:var(--surface); cursor:pointer; font-size:0.9rem;
    }
    .cards { display:grid; grid-template-columns:repeat(auto-fill, minmax(320px, 1fr)); gap:16px; }
    .card {
      border-radius:18px; padding:20px; background:var(--surface);
      border:1px solid var(--border); box-shadow:0 20px 40px rgba(16,23,36,0.08);
      cursor:pointer;
    }
    .card h3 { margin:0; font-size:1.05rem; }
    .card .sub { color:var(--muted); font-size:0.85rem; margin:0.15rem 0 0.6rem; }
    .card p { margin:0.3rem 0 0; font-size:0.9rem; color:var(--text); }
    .badge {
      display:inline-block; border-radius:999px; padding:0.12rem 0.6rem;
      font-size:0.75rem; font-weight:600; text-transform:uppercase; letter-spacing:0.05em;
    }
    .badge.success { background:rgba(21,128,61,0.12); color:var(--success); }
    .badge.warning { background:rgba(180,83,9,0.12); color:var(--warning); }
    .badge.danger { background:rgba(185,28,28,0.12); color:var(--danger); }
    .badge.primary { background:rgba(37,99,235,0.12); color:var(--accent); }
    .badge.secondary { background:rgba(15,23,42,0.08); color:var(--muted); }
    table.grid, table.heatmap { width:100%; border-collapse:collapse; background:var(--surface); border-radius:14px; overflow:hidden; }
    table.grid th, table.grid td, table.heatmap th, table.heatmap td {
      padding:0.5rem 0.8rem; border-bottom:1px solid var(--border); text-align:left; font-size:0.88rem;
    }
    table.grid th, table.heatmap th { background:rgba(15,23,42,0.04); font-weight:600; }
    table.grid tr.row { cursor:pointer; }
    table.heatmap td.cell { text-align:center; font-size:1.05rem; }
    td.cell-compliant { background:rgba(21,128,61,0.14); }
    td.cell-partial, td.cell-conditional { background:rgba(180,83,9,0.14); }
    td.cell-non-compliant, td.cell-banned { background:rgba(185,28,28,0.14); }
    td.cell-unknown { background:rgba(15,23,42,0.04); color:var(--muted); }
    tr.detail td { background:rgba(15,23,42,0.03); font-size:0.85rem; }
    .bucket { margin:0.4rem 0; }
    .bucket b { font-size:0.85rem; }
    .checkboxes { display:flex; flex-wrap:wrap; gap:8px; margin-bottom:14px; }
    .checkboxes a {
      text-decoration:none; font-size:0.85rem; color:var(--muted);
      border:1px solid var(--border); border-radius:999px; padding:0.3rem 0.8rem; background:var(--surface);
    }
    .checkboxes a.on { color:var(--accent); border-color:rgba(37,99,235,0.4); background:rgba(37,99,235,0.08); }
    .zone-section { margin-bottom:24px; border-radius:18px; padding:20px; background:var(--surface); border:1px solid var(--border); }
    .zone-section h3 { margin:0 0 0.3rem; text-transform:capitalize; }
    .zone-section p.desc { color:var(--muted); font-size:0.9rem; margin:0 0 0.8rem; }
    .stats { display:grid; grid-template-columns:repeat(auto-fill, minmax(180px, 1fr)); gap:14px; }
    .stat { border-radius:16px; padding:18px; background:var(--surface); border:1px solid var(--border); text-align:center; }
    .stat .n { font-size:1.8rem; font-weight:600; }
    .stat .l { color:var(--muted); font-size:0.85rem; }
    .panel { border-radius:18px; padding:22px; background:var(--surface); border:1px solid var(--border); margin-bottom:18px; }
    .panel h2 { margin:0 0 0.6rem; font-size:1.15rem; }
    .panel h3 { margin:1rem 0 0.3rem; font-size:1rem; }
    .panel p, .panel li { font-size:0.92rem; }
    .legend { margin-top:12px; color:var(--muted); font-size:0.85rem; display:flex; gap:16px; flex-wrap:wrap; }
    dialog { border:1px solid var(--border); border-radius:16px; max-width:640px; width:90%; padding:0; }
    dialog pre { margin:0; padding:20px; overflow:auto; max-height:70vh; font-size:0.82rem; }
    .empty { color:var(--muted); padding:2rem; text-align:center; }
  </style>
</head>
<body>
<div class="chrome">
  <header>
    <div>
      <h1>{{.Title}}</h1>
      <p class="subtitle">version {{.Meta.Version}}{{with .Meta.Description}} · {{.}}{{end}}</p>
    </div>
    <form method="post" action="/reload"><button type="submit">Reload data</button></form>
  </header>

  {{if .LastError}}<div class="banner error">Load failed: {{.LastError}}</div>{{end}}
  {{if .Loading}}<div class="banner loading">Loading dataset…</div>{{end}}

  <nav class="tabs">
    {{range .Tabs}}<a href="{{.URL}}" {{if .Active}}class="active"{{end}}>{{.Label}}</a>{{end}}
  </nav>

  {{if .ShowFilters}}
  <form class="toolbar" method="get" action="/" id="filterForm">
    {{with .TabParam}}<input type="hidden" name="tab" value="{{.}}">{{end}}
    {{with .ViewParam}}<input type="hidden" name="view" value="{{.}}">{{end}}
    <select name="jurisdiction" onchange="this.form.submit()">
      {{range .Jurisdictions}}<option value="{{.Value}}" {{if .Selected}}selected{{end}}>{{.Label}}</option>{{end}}
    </select>
    <select name="regulation" onchange="this.form.submit()">
      {{range .Regulations}}<option value="{{.Value}}" {{if .Selected}}selected{{end}}>{{.Label}}</option>{{end}}
    </select>
    <select name="solution" onchange="this.form.submit()">
      {{range .Solutions}}<option value="{{.Value}}" {{if .Selected}}selected{{end}}>{{.Label}}</option>{{end}}
    </select>
    <select name="zone" onchange="this.form.submit()">
      {{range .ZoneOptions}}<option value="{{.Value}}" {{if .Selected}}selected{{end}}>{{.Label}}</option>{{end}}
    </select>
    <input type="text" name="search" id="searchBox" placeholder="Search…" value="{{.Search}}">
    {{if .Modes}}
    <span class="modes">
      {{range .Modes}}<a href="{{.URL}}" {{if .Active}}class="active"{{end}}>{{.Label}}</a>{{end}}
    </span>
    {{end}}
  </form>
  {{end}}

  {{with .Counts}}
  <div class="stats">
    <div class="stat"><div class="n">{{.Regulations}}</div><div class="l">Regulations</div></div>
    <div class="stat"><div class="n">{{.Requirements}}</div><div class="l">Requirements</div></div>
    <div class="stat"><div class="n">{{.Solutions}}</div><div class="l">Solutions</div></div>
    <div class="stat"><div class="n">{{.Mappings}}</div><div class="l">Mappings</div></div>
    <div class="stat"><div class="n">{{.Jurisdictions}}</div><div class="l">Jurisdictions</div></div>
    <div class="stat"><div class="n">{{.Zones}}</div><div class="l">Zone assignments</div></div>
    <div class="stat"><div class="n">{{.Enforcement}}</div><div class="l">Enforcement</div></div>
  </div>
  {{end}}

  {{if .Cards}}
  <div class="cards">
    {{range .Cards}}
    <div class="card" data-detail="{{.Detail}}">
      <h3>{{.Title}} {{if .Badge}}<span class="badge {{.BadgeKind}}">{{.Badge}}</span>{{end}}</h3>
      <div class="sub">{{.Subtitle}}</div>
      {{range .Lines}}{{if .}}<p>{{.}}</p>{{end}}{{end}}
    </div>
    {{end}}
  </div>
  {{end}}

  {{if .GridURL}}
  <div id="gridHost" data-src="{{.GridURL}}"><div class="empty">Loading table…</div></div>
  {{end}}

  {{if or .JurisdictionBoxes .ZoneBoxes}}
  <div class="checkboxes">
    {{range .JurisdictionBoxes}}<a href="{{.URL}}" class="{{if .Checked}}on{{end}}">{{.Label}}</a>{{end}}
  </div>
  <div class="checkboxes">
    {{range .ZoneBoxes}}<a href="{{.URL}}" class="{{if .Checked}}on{{end}}">{{.Label}}</a>{{end}}
  </div>
  {{end}}

  {{with .Matrix}}
  {{if .Rows}}
  <table class="heatmap">
    <thead>
      <tr>
        <th>Regulation</th><th>Control</th><th>Jurisdictions</th>
        {{range .Columns}}<th title="{{.Title}}">{{.ShortName}}</th>{{end}}
      </tr>
    </thead>
    <tbody>
      {{$span := .DetailSpan}}
      {{range .Rows}}
      <tr>
        <td title="{{.RegulationName}}">{{.RegulationShort}}</td>
        <td><a href="{{.ExpandURL}}">{{if .Expanded}}▼{{else}}▶{{end}}</a> {{.ControlDisplay}}</td>
        <td>{{.JurisdictionList}}</td>
        {{range .Cells}}
        <td class="cell {{if .Known}}cell-{{.Level}}{{else}}cell-unknown{{end}}" title="{{.Tooltip}}">{{.Icon}}{{with .ETA}}<br><small>{{.}}</small>{{end}}</td>
        {{end}}
      </tr>
      {{if .Expanded}}
      <tr class="detail">
        <td colspan="{{$span}}">
          <b>{{.RequirementID}}: {{.Name}}</b>
          {{with .Description}}<p>{{.}}</p>{{end}}
          {{with .Detail.Compliant}}<div class="bucket"><b>✓ Compliant ({{len .}})</b>{{range .}}<p>{{.SolutionName}}{{with .Mapping.Notes}} — {{.}}{{end}}</p>{{end}}</div>{{end}}
          {{with .Detail.Conditional}}<div class="bucket"><b>◐ Conditional ({{len .}})</b>{{range .}}<p>{{.SolutionName}} ({{.Mapping.ComplianceLevel}}){{with .Mapping.ETA}} ETA {{.}}{{end}}{{with .Mapping.Notes}} — {{.}}{{end}}</p>{{end}}</div>{{end}}
          {{with .Detail.Banned}}<div class="bucket"><b>⊘ Banned ({{len .}})</b>{{range .}}<p>{{.SolutionName}} ({{.Mapping.ComplianceLevel}}){{with .Mapping.Notes}} — {{.}}{{end}}</p>{{end}}</div>{{end}}
        </td>
      </tr>
      {{end}}
      {{end}}
    </tbody>
  </table>
  <div class="legend">
    <span>✓ Compliant</span><span>◐ Partial</span><span>? Conditional / Unknown</span><span>✗ Non-compliant</span><span>⊘ Banned</span>
  </div>
  {{else}}
  <div class="empty">No mappings match the current selections.</div>
  {{end}}
  {{end}}

  {{range .ZoneSections}}
  <div class="zone-section">
    <h3>{{.Zone}} zone ({{len .Rows}} mappings)</h3>
    {{with .Description}}<p class="desc">{{.}}</p>{{end}}
    {{if .Rows}}
    <table class="grid">
      <thead><tr><th>Solution</th><th>Requirement</th><th>Compliance</th><th>Jurisdictions</th><th>Notes</th></tr></thead>
      <tbody>
        {{range .Rows}}
        <tr>
          <td>{{.SolutionName}}</td>
          <td>{{.RequirementID}}</td>
          <td><span class="badge secondary">{{.ComplianceLevel}}</span></td>
          <td>{{.Jurisdictions}}</td>
          <td>{{.Notes}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    {{else}}<div class="empty">No mappings in this zone.</div>{{end}}
  </div>
  {{end}}

  {{with .Overview}}
  <div class="panel">
    <h2>{{.Metadata.Title}}</h2>
    <p class="subtitle">version {{.Metadata.Version}} · updated {{.Metadata.LastUpdated}}{{with .Metadata.Analyst}} · {{.}}{{end}}</p>
    {{with .KeyTakeaways}}<h3>Key takeaways</h3><ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{range .Segments}}
    <h3>{{.Name}} <span class="badge secondary">{{.Type}}</span>{{with .RiskLevel}} <span class="badge warning">{{.}} risk</span>{{end}}</h3>
    {{with .Summary}}<p>{{.}}</p>{{end}}
    {{range .KeyRequirements}}<p><b>{{.Name}}</b> ({{.Priority}}, {{.Status}}){{with .Impact}} — {{.}}{{end}}</p>{{end}}
    {{end}}
    {{with .RegulatoryContext}}
    <h3>Regulatory context</h3>
    {{with .Overview}}<p>{{.}}</p>{{end}}
    {{range .KeyDrivers}}<p><b>{{.Name}}</b> — {{.Description}}</p>{{end}}
    {{end}}
    {{with .Outlook}}
    <h3>Outlook</h3>
    {{with .Summary}}<p>{{.}}</p>{{end}}
    {{end}}
  </div>
  {{end}}
  {{if .ExecutiveEmpty}}
  <div class="empty">No executive overview is available in this dataset.</div>
  {{end}}
</div>

<dialog id="detailDialog"><pre id="detailBody"></pre></dialog>

<script>
(function(){
  var searchBox = document.getElementById('searchBox');
  if (searchBox) {
    var timer = null;
    searchBox.addEventListener('input', function(){
      if (timer) clearTimeout(timer);
      timer = setTimeout(function(){
        document.getElementById('filterForm').submit();
      }, 300);
    });
  }

  var dialog = document.getElementById('detailDialog');
  function showDetail(url){
    fetch(url).then(function(r){ return r.text(); }).then(function(body){
      document.getElementById('detailBody').textContent = body;
      dialog.showModal();
    });
  }
  dialog.addEventListener('click', function(){ dialog.close(); });
  document.querySelectorAll('.card[data-detail]').forEach(function(el){
    el.addEventListener('click', function(){ showDetail(el.dataset.detail); });
  });

  var host = document.getElementById('gridHost');
  if (host) {
    fetch(host.dataset.src).then(function(r){ return r.json(); }).then(function(grid){
      if (!grid.rows || grid.rows.length === 0) {
        host.innerHTML = '<div class="empty">' + grid.placeholder + '</div>';
        return;
      }
      var table = document.createElement('table');
      table.className = 'grid';
      var thead = document.createElement('thead');
      var hr = document.createElement('tr');
      grid.columns.forEach(function(col){
        var th = document.createElement('th');
        th.textContent = col.title;
        hr.appendChild(th);
      });
      thead.appendChild(hr);
      table.appendChild(thead);
      var tbody = document.createElement('tbody');
      grid.rows.forEach(function(row){
        var tr = document.createElement('tr');
        tr.className = 'row';
        grid.columns.forEach(function(col){
          var td = document.createElement('td');
          var val = row[col.field];
          if (col.kind === 'badge' && val !== undefined && val !== '') {
            var span = document.createElement('span');
            span.className = 'badge secondary';
            span.textContent = String(val);
            td.appendChild(span);
          } else {
            td.textContent = val === undefined || val === null ? '-' : String(val);
          }
          tr.appendChild(td);
        });
        tbody.appendChild(tr);
      });
      table.appendChild(tbody);
      host.innerHTML = '';
      host.appendChild(table);
    });
  }

  function connect(){
    var proto = location.protocol === 'https:' ? 'wss' : 'ws';
    var ws = new WebSocket(proto + '://' + location.host + '/ws');
    ws.onmessage = function(ev){
      try {
        var data = JSON.parse(ev.data);
        if (data.event === 'reload') location.reload();
      } catch(err) {}
    };
    ws.onclose = function(){ setTimeout(connect, 1500); };
  }
  connect();
})();
</script>
</body>
</html>`
