package dashboard

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strconv"

	"github.com/yosssi/gohtml"

	"spacex-dashboard/models"
)

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"num": func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
}).Parse(pageHTML))

type pageGraph struct {
	ID  string
	Src template.URL
	Alt string
}

type pageData struct {
	Layout   *models.Layout
	Site     string
	Payload  models.PayloadRange
	Pie      pageGraph
	Scatter  pageGraph
	Dropdown string
	Slider   string
}

// renderURL is the server-side render endpoint for output under the given
// selection.
func renderURL(output, site string, payload models.PayloadRange) string {
	q := url.Values{}
	q.Set("site", site)
	q.Set("payload", FormatRange(payload))
	return "/_dash-render/" + output + ".svg?" + q.Encode()
}

// renderPage executes the page template and pretty-prints the result.
func renderPage(data *pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}
	return gohtml.FormatBytes(buf.Bytes()), nil
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Layout.Title}}</title>
<style>
body { font-family: sans-serif; margin: 0 auto; max-width: 960px; }
h1 { text-align: center; color: #503D36; font-size: 40px; }
.graph img { width: 100%; }
.slider input { width: 100%; }
.marks { display: flex; justify-content: space-between; font-size: 12px; }
</style>
</head>
<body>
<h1>{{.Layout.Title}}</h1>
<select id="{{.Layout.Dropdown.ID}}" aria-label="{{.Layout.Dropdown.Placeholder}}">
{{- range .Layout.Dropdown.Options}}
<option value="{{.Value}}"{{if eq .Value $.Site}} selected{{end}}>{{.Label}}</option>
{{- end}}
</select>
<br>
<div class="graph" id="{{.Pie.ID}}"><img src="{{.Pie.Src}}" alt="{{.Pie.Alt}}"></div>
<br>
<p>{{.Layout.SliderLabel}} <span id="{{.Slider}}-value">{{num .Payload.Low}} - {{num .Payload.High}}</span></p>
<div class="slider" id="{{.Slider}}">
<input type="range" id="{{.Slider}}-low" min="{{num .Layout.Slider.Min}}" max="{{num .Layout.Slider.Max}}" step="{{num .Layout.Slider.Step}}" value="{{num .Payload.Low}}" list="{{.Slider}}-marks">
<input type="range" id="{{.Slider}}-high" min="{{num .Layout.Slider.Min}}" max="{{num .Layout.Slider.Max}}" step="{{num .Layout.Slider.Step}}" value="{{num .Payload.High}}" list="{{.Slider}}-marks">
<datalist id="{{.Slider}}-marks">
{{- range .Layout.Slider.Marks}}
<option value="{{num .Value}}" label="{{.Label}}"></option>
{{- end}}
</datalist>
<div class="marks">
{{- range .Layout.Slider.Marks}}
<span>{{.Label}}</span>
{{- end}}
</div>
</div>
<div class="graph" id="{{.Scatter.ID}}"><img src="{{.Scatter.Src}}" alt="{{.Scatter.Alt}}"></div>
<script>
(function () {
  var dropdownID = "{{.Dropdown}}";
  var sliderID = "{{.Slider}}";
  var dd = document.getElementById(dropdownID);
  var lo = document.getElementById(sliderID + "-low");
  var hi = document.getElementById(sliderID + "-high");
  var label = document.getElementById(sliderID + "-value");
  var imgs = document.querySelectorAll(".graph img");

  function markReady() {
    for (var i = 0; i < imgs.length; i++) {
      if (!imgs[i].complete) { return; }
    }
    document.body.setAttribute("data-ready", "1");
  }

  function state() {
    var a = Number(lo.value), b = Number(hi.value);
    var s = {};
    s[dropdownID] = dd.value;
    s[sliderID] = [Math.min(a, b), Math.max(a, b)];
    return s;
  }

  function refresh(changed) {
    var s = state();
    label.textContent = s[sliderID].join(" - ");
    fetch("/_dash-update-component", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ changed: changed, inputs: s })
    }).then(function (r) { return r.json(); }).then(function (d) {
      var q = "?site=" + encodeURIComponent(s[dropdownID]) + "&payload=" + s[sliderID].join(",");
      Object.keys(d.figures || {}).forEach(function (id) {
        var img = document.querySelector("#" + id + " img");
        if (!img) { return; }
        document.body.removeAttribute("data-ready");
        img.alt = d.figures[id].title;
        img.src = "/_dash-render/" + id + ".svg" + q + "&dispatch=" + d.dispatch_id;
      });
    });
  }

  for (var i = 0; i < imgs.length; i++) {
    imgs[i].addEventListener("load", markReady);
    imgs[i].addEventListener("error", markReady);
  }
  dd.addEventListener("change", function () { refresh(dropdownID); });
  lo.addEventListener("change", function () { refresh(sliderID); });
  hi.addEventListener("change", function () { refresh(sliderID); });
  markReady();
})();
</script>
</body>
</html>
`
