package handler

import "net/http"

// Index serves the single-page UI that drives the digest endpoints.
type Index struct{}

func NewIndex() *Index {
	return &Index{}
}

func (h *Index) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Media Digest</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
textarea { width: 100%; height: 8rem; }
input[type=text] { width: 100%; }
.metric { display: inline-block; margin-right: 2rem; }
.metric .value { font-size: 1.5rem; font-weight: bold; }
details { color: #555; font-size: 0.9rem; }
#error { color: #b00; }
</style>
</head>
<body>
<h1>Media Digest</h1>
<p>
<label>Input type:
<select id="kind">
<option value="video">Video</option>
<option value="pdf">PDF</option>
<option value="text">Text</option>
</select>
</label>
</p>
<p id="video-input"><input type="text" id="url" placeholder="Paste a YouTube link"></p>
<p id="pdf-input" hidden><input type="file" id="file" accept=".pdf"></p>
<p id="text-input" hidden><textarea id="text" placeholder="Paste text"></textarea></p>
<p><button id="go">Digest</button></p>
<p id="error"></p>
<div id="result" hidden>
<h2>Summary</h2><div id="summary"></div>
<h2>Tags</h2><div id="tags"></div>
<h2>Industries</h2><div id="industries"></div>
<h2>Accessibility</h2><div id="metrics"></div>
</div>
<script>
const kind = document.getElementById('kind');
kind.addEventListener('change', () => {
  document.getElementById('video-input').hidden = kind.value !== 'video';
  document.getElementById('pdf-input').hidden = kind.value !== 'pdf';
  document.getElementById('text-input').hidden = kind.value !== 'text';
});

function metricBlock(label, value, explanation) {
  if (value === undefined || value === null || value === '') return '';
  return '<span class="metric"><span class="value">' + value + '</span><br>' + label +
    '<details><summary>About ' + label + '</summary>' + (explanation || '') + '</details></span>';
}

document.getElementById('go').addEventListener('click', async () => {
  const errEl = document.getElementById('error');
  errEl.textContent = '';
  document.getElementById('result').hidden = true;
  try {
    let resp;
    if (kind.value === 'video') {
      resp = await fetch('/digest/url', {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({url: document.getElementById('url').value})
      });
    } else if (kind.value === 'pdf') {
      const form = new FormData();
      form.append('file', document.getElementById('file').files[0]);
      resp = await fetch('/digest/upload', {method: 'POST', body: form});
    } else {
      resp = await fetch('/digest/text', {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({text: document.getElementById('text').value})
      });
    }
    const body = await resp.json();
    if (body.status !== 'success') {
      errEl.textContent = body.error || 'Request failed';
      return;
    }
    const d = body.data;
    document.getElementById('summary').textContent = d.summary;
    document.getElementById('tags').textContent = (d.tags || []).join(', ') || 'No data available';
    document.getElementById('industries').textContent = (d.industries || []).join(', ') || 'No data available';
    const m = d.metrics || {};
    const ex = d.explanations || {};
    document.getElementById('metrics').innerHTML =
      metricBlock('Words Per Minute', m.words_per_minute && m.words_per_minute.toFixed(1), ex.words_per_minute) +
      metricBlock('Jargon Score', m.jargon_score && m.jargon_score.toFixed(1), ex.jargon_score) +
      metricBlock('Reading Level', m.reading_level, ex.reading_level);
    document.getElementById('result').hidden = false;
  } catch (e) {
    errEl.textContent = 'Request failed: ' + e;
  }
});
</script>
</body>
</html>
`
