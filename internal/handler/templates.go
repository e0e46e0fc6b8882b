package handler

const pageTemplates = `
{{define "head"}}<!doctype html>
<html lang="en">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.}}</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto;margin:0;background:#0f172a;color:#e2e8f0}
a{color:inherit}
.wrapper{max-width:1100px;margin:0 auto;padding:1.5rem}
.center{min-height:60vh;display:flex;align-items:center;justify-content:center}
.spinner{width:48px;height:48px;border:4px solid #334155;border-top-color:#a855f7;border-radius:50%;animation:spin 1s linear infinite}
@keyframes spin{to{transform:rotate(360deg)}}
.panel{background:rgba(255,255,255,.05);border:1px solid rgba(255,255,255,.1);border-radius:12px;padding:1rem;margin-bottom:1rem}
.panel.error{border-color:#ef4444;color:#f87171}
.button{display:inline-block;margin-top:1rem;padding:.5rem 1.25rem;border-radius:999px;background:rgba(255,255,255,.1);text-decoration:none}
.backdrop img{width:100%;max-height:24rem;object-fit:cover}
.layout{display:grid;grid-template-columns:1fr 2fr;gap:2rem}
.poster img{width:100%;border-radius:16px}
.rating{font-size:2rem;font-weight:700;color:#facc15;text-align:center;margin-top:1rem}
.info{display:grid;grid-template-columns:1fr 1fr;gap:1rem}
.label{text-transform:uppercase;font-size:.8rem;color:#94a3b8}
.tags span{display:inline-block;padding:.3rem .9rem;margin:.2rem;border-radius:999px;background:#9333ea}
.muted{color:#94a3b8}
</style>
<body>
{{end}}

{{define "foot"}}</body>
</html>
{{end}}

{{define "index"}}{{template "head" "Movies"}}
<div class="wrapper">
  <h1>Find a movie</h1>
  <form class="panel" method="get" action="/">
    <label class="label" for="id">TMDB movie id</label>
    <input id="id" name="id" inputmode="numeric" placeholder="603" required />
    <button type="submit">Show details</button>
  </form>
</div>
{{template "foot"}}{{end}}

{{define "details"}}{{template "head" "Movie details"}}
<div id="content" data-movie-id="{{.MovieID}}" data-src="{{.ContentURL}}">{{template "loading"}}</div>
<template id="fetch-error">{{template "error" .FetchError}}</template>
<noscript><div class="wrapper"><a class="button" href="{{.ContentURL}}">Show details</a></div></noscript>
<script>
(function () {
  var el = document.getElementById("content");
  fetch(el.dataset.src, { headers: { accept: "text/html" } })
    .then(function (res) { return res.text(); })
    .then(function (html) { el.innerHTML = html; })
    .catch(function (err) {
      console.error("Error fetching movie details:", err);
      var view = document.getElementById("fetch-error").content.cloneNode(true);
      view.querySelector(".message").textContent = "Error: " + err.message;
      el.replaceChildren(view);
    });
})();
</script>
{{template "foot"}}{{end}}

{{define "loading"}}<div class="center" data-state="loading"><div class="spinner" role="status" aria-label="Loading"></div></div>{{end}}

{{define "error"}}<div class="wrapper center" data-state="error">
  <div class="panel error">
    <p class="message">Error: {{.Message}}</p>
    <a class="button" href="/">Go Back Home</a>
  </div>
</div>{{end}}

{{define "notfound"}}<div class="wrapper center" data-state="not-found">
  <p class="muted">Movie not found</p>
</div>{{end}}

{{define "movie"}}<div data-state="success">
{{if .BackdropURL}}<div class="backdrop"><img src="{{.BackdropURL}}" alt="{{.Title}}" /></div>{{end}}
<div class="wrapper">
  <a class="button" href="/">&larr; Back to Movies</a>
  <div class="layout">
    <div class="poster">
      <img src="{{.PosterURL}}" alt="{{.Title}}" />
      <div class="rating"><span id="rating">{{.Rating}}</span><span class="muted">/10</span></div>
    </div>
    <div>
      <h1>{{.Title}}</h1>
      {{if .Tagline}}<p class="muted"><em>"{{.Tagline}}"</em></p>{{end}}
      <div class="info">
        <div class="panel"><div class="label">Release Date</div><div id="release-date">{{.ReleaseDate}}</div></div>
        <div class="panel"><div class="label">Runtime</div><div>{{.Runtime}}</div></div>
        <div class="panel"><div class="label">Status</div><div>{{.Status}}</div></div>
        <div class="panel"><div class="label">Language</div><div>{{.Language}}</div></div>
      </div>
      {{if .Genres}}<div class="tags"><h3 class="label">Genres</h3>{{range .Genres}}<span>{{.}}</span>{{end}}</div>{{end}}
      {{if .Overview}}<div class="panel"><h3>Overview</h3><p>{{.Overview}}</p></div>{{end}}
      <div class="info">
        {{if .Budget}}<div class="panel" id="budget"><div class="label">Budget</div><strong>{{.Budget}}</strong></div>{{end}}
        {{if .Revenue}}<div class="panel" id="revenue"><div class="label">Revenue</div><strong>{{.Revenue}}</strong></div>{{end}}
      </div>
      {{if .Homepage}}<p><a href="{{.Homepage}}" rel="noopener">Official site</a></p>{{end}}
    </div>
  </div>
  {{if or .Companies .Countries}}<div class="info">
    {{if .Companies}}<div class="panel"><h3>Production Companies</h3>{{range .Companies}}<p>{{.}}</p>{{end}}</div>{{end}}
    {{if .Countries}}<div class="panel"><h3>Production Countries</h3>{{range .Countries}}<p>{{.}}</p>{{end}}</div>{{end}}
  </div>{{end}}
</div>
</div>{{end}}
`
