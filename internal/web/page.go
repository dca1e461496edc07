package web

// dashboardHTML is the single-page demo client served at /. It exercises
// every API route with no build step: paste a URL or assemble a vector,
// pick a model, and watch submissions arrive over the websocket.
const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Phishing Website Detection</title>
<style>
  :root {
    --bg: #f7f9fc;
    --surface: #ffffff;
    --border: #dfe5ec;
    --text: #24292f;
    --muted: #6a737d;
    --accent: #1f77b4;
    --bar-neg: #ff7f0e;
    --warn-bg: #ffcccc;
    --warn-text: #b30000;
    --safe-bg: #e6ffe6;
    --safe-text: #006600;
  }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif;
    background: var(--bg);
    color: var(--text);
  }
  .header { text-align: center; padding: 2rem 1rem 0.5rem; }
  .header h1 { font-size: 1.6rem; font-weight: 650; }
  .header p { color: var(--muted); font-size: 0.9rem; margin-top: 0.4rem; }
  .wrap {
    max-width: 1000px;
    margin: 0 auto;
    padding: 1rem;
    display: grid;
    grid-template-columns: 1fr 1fr;
    gap: 1rem;
  }
  @media (max-width: 760px) { .wrap { grid-template-columns: 1fr; } }
  .card {
    background: var(--surface);
    border: 1px solid var(--border);
    border-radius: 8px;
    padding: 1.1rem;
  }
  .card h2 {
    font-size: 0.85rem;
    color: var(--muted);
    text-transform: uppercase;
    letter-spacing: 0.05em;
    margin-bottom: 0.8rem;
  }
  .card.full { grid-column: 1 / -1; }
  input[type=text], input[type=number], select {
    width: 100%;
    padding: 0.5rem 0.7rem;
    border: 1px solid var(--border);
    border-radius: 6px;
    font-size: 0.9rem;
    background: #fff;
    color: var(--text);
  }
  input:focus, select:focus { outline: none; border-color: var(--accent); }
  button {
    margin-top: 0.8rem;
    padding: 0.55rem 1.2rem;
    border: none;
    border-radius: 6px;
    background: var(--accent);
    color: #fff;
    font-weight: 600;
    font-size: 0.9rem;
    cursor: pointer;
  }
  button:hover { opacity: 0.92; }
  button:disabled { opacity: 0.5; cursor: wait; }
  button.danger { background: transparent; color: var(--warn-text); padding: 0.1rem 0.4rem; margin: 0; }
  .row { display: flex; gap: 0.6rem; margin-bottom: 0.6rem; }
  .row > * { flex: 1; }
  label { font-size: 0.78rem; color: var(--muted); display: block; margin-bottom: 0.2rem; }
  .grid2 { display: grid; grid-template-columns: 1fr 1fr; gap: 0.6rem; }
  .verdict {
    margin-top: 0.9rem;
    padding: 0.8rem 1rem;
    border-radius: 6px;
    font-weight: 600;
    display: none;
  }
  .verdict.phishing { display: block; background: var(--warn-bg); color: var(--warn-text); }
  .verdict.legitimate { display: block; background: var(--safe-bg); color: var(--safe-text); }
  .verdict.value { display: block; background: #eef4fb; color: var(--accent); }
  .verdict.error { display: block; background: var(--warn-bg); color: var(--warn-text); }
  .bars .bar-row { display: flex; align-items: center; gap: 0.5rem; margin: 0.25rem 0; font-size: 0.78rem; }
  .bars .bar-label { width: 130px; color: var(--muted); text-align: right; }
  .bars .bar-track { flex: 1; background: var(--bg); border-radius: 3px; height: 14px; position: relative; }
  .bars .bar-fill { height: 100%; border-radius: 3px; background: var(--accent); }
  .bars .bar-fill.neg { background: var(--bar-neg); }
  .bars .bar-value { width: 52px; font-variant-numeric: tabular-nums; }
  .feed div, .history div { font-size: 0.82rem; padding: 0.35rem 0; border-bottom: 1px solid var(--border); }
  .feed div:last-child, .history div:last-child { border-bottom: none; }
  .tag { font-weight: 700; }
  .tag.phishing { color: var(--warn-text); }
  .tag.legitimate { color: var(--safe-text); }
  .muted { color: var(--muted); }
  .footer { text-align: center; color: var(--muted); font-size: 0.8rem; padding: 1.5rem; }
</style>
</head>
<body>
<div class="header">
  <h1>Phishing Website Detection using Machine Learning</h1>
  <p>Paste a URL or assemble a feature vector, pick a model, get a verdict.</p>
</div>

<div class="wrap">
  <div class="card">
    <h2>Check a URL</h2>
    <label for="urlInput">URL</label>
    <input type="text" id="urlInput" placeholder="http://secure-login-update-paypal.com/verify">
    <div class="row" style="margin-top:0.6rem">
      <div>
        <label for="urlModel">Model</label>
        <select id="urlModel"></select>
      </div>
    </div>
    <button id="urlBtn" onclick="analyzeURL()">Check URL</button>
    <div id="urlVerdict" class="verdict"></div>
  </div>

  <div class="card">
    <h2>Manual Feature Entry</h2>
    <div class="grid2">
      <div><label>url_length</label><input type="number" id="f_url_length" value="100"></div>
      <div><label>has_ip_address</label><select id="f_has_ip_address"><option value="0">No</option><option value="1">Yes</option></select></div>
      <div><label>https</label><select id="f_https"><option value="0">No</option><option value="1">Yes</option></select></div>
      <div><label>domain_age</label><input type="number" id="f_domain_age" value="2"></div>
      <div><label>has_at_symbol</label><select id="f_has_at_symbol"><option value="0">No</option><option value="1">Yes</option></select></div>
      <div><label>redirects</label><select id="f_redirects"><option value="1">Yes</option><option value="0">No</option></select></div>
      <div><label>prefix_suffix</label><select id="f_prefix_suffix"><option value="0">No</option><option value="1">Yes</option></select></div>
      <div><label>sfh</label><select id="f_sfh"><option value="0">No</option><option value="1">Yes</option></select></div>
      <div><label>subdomains_count</label><input type="number" id="f_subdomains_count" value="2"></div>
      <div><label>popup_window</label><select id="f_popup_window"><option value="0">No</option><option value="1">Yes</option></select></div>
    </div>
    <div class="row" style="margin-top:0.6rem">
      <div>
        <label for="manualModel">Model</label>
        <select id="manualModel"></select>
      </div>
    </div>
    <button id="manualBtn" onclick="analyzeManual()">Predict</button>
    <div id="manualVerdict" class="verdict"></div>
  </div>

  <div class="card">
    <h2>Feature Contributions (last submission)</h2>
    <div id="contributions" class="bars"><span class="muted">No submissions yet.</span></div>
  </div>

  <div class="card">
    <h2>Feature Importance</h2>
    <div id="importance" class="bars"><span class="muted">Loading...</span></div>
  </div>

  <div class="card">
    <h2>Live Feed</h2>
    <div id="feed" class="feed"><span class="muted" id="feedStatus">Connecting...</span></div>
  </div>

  <div class="card">
    <h2>History</h2>
    <div id="history" class="history"><span class="muted">Loading...</span></div>
  </div>
</div>

<div class="footer">Created by Kabiraj Rana</div>

<script>
const $ = s => document.querySelector(s);
const featureNames = ['url_length','has_ip_address','https','domain_age','has_at_symbol',
                      'redirects','prefix_suffix','sfh','subdomains_count','popup_window'];

async function loadModels() {
  const infos = await fetch('/api/models').then(r => r.json());
  for (const sel of [$('#urlModel'), $('#manualModel')]) {
    sel.innerHTML = '';
    for (const info of infos) {
      const opt = document.createElement('option');
      opt.value = info.use_case;
      opt.textContent = info.use_case + ' (' + info.kind + ')';
      sel.appendChild(opt);
    }
  }
}

function showVerdict(el, data) {
  el.className = 'verdict';
  if (data.error) {
    el.classList.add('error');
    el.textContent = data.error;
    return;
  }
  if (data.label === 'Phishing') {
    el.classList.add('phishing');
    el.textContent = 'Warning! This website might be a phishing site!';
  } else if (data.label === 'Legitimate') {
    el.classList.add('legitimate');
    el.textContent = 'This website seems safe to use.';
  } else {
    el.classList.add('value');
    el.textContent = 'Estimated domain age: ' + data.value.toFixed(2) + ' years';
  }
}

function renderBars(el, entries, signed) {
  el.innerHTML = '';
  const max = Math.max(...entries.map(e => Math.abs(e.value)), 1e-9);
  for (const e of entries) {
    const row = document.createElement('div');
    row.className = 'bar-row';
    const fill = signed && e.value < 0 ? 'bar-fill neg' : 'bar-fill';
    const width = (Math.abs(e.value) / max * 100).toFixed(1);
    row.innerHTML = '<span class="bar-label">' + e.feature + '</span>' +
      '<span class="bar-track"><span class="' + fill + '" style="width:' + width + '%"></span></span>' +
      '<span class="bar-value">' + e.value.toFixed(3) + '</span>';
    el.appendChild(row);
  }
}

async function analyzeURL() {
  const btn = $('#urlBtn');
  btn.disabled = true;
  try {
    const res = await fetch('/api/analyze', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({url: $('#urlInput').value, use_case: $('#urlModel').value})
    });
    const data = await res.json();
    showVerdict($('#urlVerdict'), data);
    if (data.contributions) renderBars($('#contributions'), data.contributions, true);
    loadHistory();
  } catch (e) {
    showVerdict($('#urlVerdict'), {error: e.message});
  } finally {
    btn.disabled = false;
  }
}

async function analyzeManual() {
  const btn = $('#manualBtn');
  btn.disabled = true;
  const features = {};
  for (const name of featureNames) {
    features[name] = parseFloat($('#f_' + name).value) || 0;
  }
  try {
    const res = await fetch('/api/manual', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({features: features, use_case: $('#manualModel').value})
    });
    const data = await res.json();
    showVerdict($('#manualVerdict'), data);
    if (data.contributions) renderBars($('#contributions'), data.contributions, true);
    loadHistory();
  } catch (e) {
    showVerdict($('#manualVerdict'), {error: e.message});
  } finally {
    btn.disabled = false;
  }
}

async function loadImportance() {
  const el = $('#importance');
  const data = await fetch('/api/importance').then(r => r.json());
  if (data.error) { el.innerHTML = '<span class="muted">' + data.error + '</span>'; return; }
  renderBars(el, data, false);
}

function submissionLine(sub, withDelete) {
  const p = sub.prediction;
  let result;
  if (p.label) {
    result = '<span class="tag ' + p.label.toLowerCase() + '">' + p.label + '</span>';
  } else {
    result = '<span class="tag">' + p.value.toFixed(2) + ' yrs</span>';
  }
  const what = sub.url ? sub.url : 'manual vector';
  const del = withDelete
    ? ' <button class="danger" onclick="removeSubmission(\'' + sub.id + '\')">x</button>'
    : '';
  return '<div>' + result + ' <span class="muted">[' + p.use_case + ']</span> ' + what + del + '</div>';
}

async function loadHistory() {
  const subs = await fetch('/api/submissions').then(r => r.json());
  const el = $('#history');
  if (!subs.length) { el.innerHTML = '<span class="muted">No submissions yet.</span>'; return; }
  el.innerHTML = subs.slice(0, 15).map(s => submissionLine(s, true)).join('');
}

async function removeSubmission(id) {
  await fetch('/api/submissions/' + id, {method: 'DELETE'});
  loadHistory();
}

function connectWS() {
  const proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
  const ws = new WebSocket(proto + location.host + '/ws');
  ws.onopen = () => { $('#feedStatus').textContent = 'Waiting for submissions...'; };
  ws.onmessage = ev => {
    const msg = JSON.parse(ev.data);
    if (msg.type !== 'submission') return;
    const el = $('#feed');
    const status = $('#feedStatus');
    if (status) status.remove();
    el.insertAdjacentHTML('afterbegin', submissionLine(msg.data, false));
    while (el.children.length > 10) el.removeChild(el.lastChild);
  };
  ws.onclose = () => setTimeout(connectWS, 2000);
}

loadModels();
loadImportance();
loadHistory();
connectWS();
</script>
</body>
</html>
`
