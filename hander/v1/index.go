package V1

const index = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <title>Gemini 2.5 TTS - Text to Speech</title>
  <style>
    body { font-family: sans-serif; max-width: 860px; margin: 0 auto; padding: 20px; }
    h1 { font-size: 26px; }
    label { display: block; margin-top: 14px; font-weight: bold; }
    input[type=text], input[type=password], select, textarea { width: 100%; padding: 8px; margin-top: 4px; box-sizing: border-box; }
    textarea { height: 150px; }
    .hint { color: #666; font-size: 13px; margin-top: 4px; }
    .tip { background: #f4f4f4; padding: 6px 10px; font-family: monospace; font-size: 13px; margin: 4px 0; }
    .row { display: flex; gap: 16px; }
    .row > div { flex: 1; }
    #generateBtn { margin-top: 18px; width: 100%; padding: 12px; font-size: 16px; background: #e33e3e; color: white; border: none; cursor: pointer; }
    #generateBtn:disabled { background: #aaa; cursor: wait; }
    #status { margin-top: 14px; }
    #status.error { color: #b00020; }
    #status.ok { color: green; }
    #result { display: none; margin-top: 14px; }
    #download { display: inline-block; margin-top: 8px; }
    #echo { white-space: pre-wrap; background: #f9f9f9; padding: 10px; margin-top: 8px; }
    footer { margin-top: 30px; border-top: 1px solid #ddd; padding-top: 12px; color: #666; font-size: 14px; }
    #stats span { margin-right: 24px; }
    details { margin-top: 14px; }
  </style>
</head>
<body>
  <h1>🎤 Gemini 2.5 TTS - Text to Speech</h1>
  <p>Convert text to speech using Gemini 2.5 TTS models with 30 unique voices.</p>

  <label for="apiKey">🔑 Gemini API Key</label>
  <input type="password" id="apiKey" placeholder="AIza..." />
  <div class="hint">Your key is only forwarded to the API for this request, never stored.</div>

  <label for="model">🤖 Model</label>
  <select id="model"></select>

  <label>🎭 Mode</label>
  <div>
    <label style="display:inline; font-weight:normal"><input type="radio" name="mode" value="single" checked /> Single Speaker</label>
    <label style="display:inline; font-weight:normal; margin-left: 16px"><input type="radio" name="mode" value="multi" /> Multi Speaker (up to 2)</label>
  </div>

  <div id="singlePane">
    <label for="voice">🎵 Voice</label>
    <select id="voice"></select>
    <div class="hint">💡 Style tips - you can control delivery with natural language:</div>
    <div class="tip">Say cheerfully: Have a wonderful day!</div>
    <div class="tip">Say in a spooky whisper: Something wicked this way comes</div>
  </div>

  <div id="multiPane" style="display:none">
    <div class="row">
      <div>
        <label for="speaker1Name">Speaker 1 Name</label>
        <input type="text" id="speaker1Name" value="Speaker1" />
        <label for="speaker1Voice">Speaker 1 Voice</label>
        <select id="speaker1Voice"></select>
      </div>
      <div>
        <label for="speaker2Name">Speaker 2 Name</label>
        <input type="text" id="speaker2Name" value="Speaker2" />
        <label for="speaker2Voice">Speaker 2 Voice</label>
        <select id="speaker2Voice"></select>
      </div>
    </div>
    <div class="hint">💡 Format: prefix each line with the speaker name, e.g.</div>
    <div class="tip">Speaker1: How's it going today?<br>Speaker2: Not too bad, how about you?</div>
  </div>

  <label for="text">📝 Text to convert</label>
  <textarea id="text" maxlength="8000"></textarea>
  <div class="hint"><span id="charCount">0</span>/8000 characters</div>

  <button id="generateBtn">🎯 Generate Speech</button>
  <div id="status"></div>

  <div id="result">
    <audio id="player" controls style="width:100%"></audio>
    <a id="download" href="#">💾 Download Audio</a>
    <details><summary>📄 Generated Text</summary><div id="echo"></div></details>
  </div>

  <details>
    <summary>🎵 Voice Characteristics</summary>
    <ul id="voiceList"></ul>
  </details>

  <footer>
    <div id="stats"></div>
  </footer>

  <script>
    var modelSel = document.getElementById("model");
    var voiceSel = document.getElementById("voice");
    var s1Voice = document.getElementById("speaker1Voice");
    var s2Voice = document.getElementById("speaker2Voice");
    var textEl = document.getElementById("text");
    var statusEl = document.getElementById("status");
    var btn = document.getElementById("generateBtn");

    function fillSelect(sel, options) {
      sel.innerHTML = "";
      options.forEach(function (o) {
        var opt = document.createElement("option");
        opt.value = o.id;
        opt.textContent = o.label;
        sel.appendChild(opt);
      });
    }

    fetch("/v1/models").then(function (r) { return r.json(); }).then(function (res) {
      fillSelect(modelSel, res.data);
    });
    fetch("/v1/voices").then(function (r) { return r.json(); }).then(function (res) {
      fillSelect(voiceSel, res.data);
      fillSelect(s1Voice, res.data);
      fillSelect(s2Voice, res.data);
      if (res.data.length > 1) s2Voice.selectedIndex = 1;
      var list = document.getElementById("voiceList");
      res.data.forEach(function (o) {
        var li = document.createElement("li");
        li.textContent = o.label;
        list.appendChild(li);
      });
    });
    fetch("/v1/stats").then(function (r) { return r.json(); }).then(function (res) {
      var s = res.data;
      document.getElementById("stats").innerHTML =
        "<span>Models: " + s.models + "</span>" +
        "<span>Voices: " + s.voices + "</span>" +
        "<span>Languages: " + s.languages + "</span>" +
        "<span>Max speakers: " + s.max_speakers + "</span>";
    });

    textEl.addEventListener("input", function () {
      document.getElementById("charCount").textContent = textEl.value.length;
    });

    document.querySelectorAll("input[name=mode]").forEach(function (r) {
      r.addEventListener("change", function () {
        var multi = document.querySelector("input[name=mode]:checked").value === "multi";
        document.getElementById("singlePane").style.display = multi ? "none" : "block";
        document.getElementById("multiPane").style.display = multi ? "block" : "none";
      });
    });

    btn.onclick = function () {
      var multi = document.querySelector("input[name=mode]:checked").value === "multi";
      var body = {
        api_key: document.getElementById("apiKey").value,
        model: modelSel.value,
        text: textEl.value
      };
      if (multi) {
        body.speakers = [
          { speaker: document.getElementById("speaker1Name").value, voice: s1Voice.value },
          { speaker: document.getElementById("speaker2Name").value, voice: s2Voice.value }
        ];
      } else {
        body.voice = voiceSel.value;
      }

      btn.disabled = true;
      statusEl.className = "";
      statusEl.textContent = "⏳ Generating speech... This may take up to a minute.";
      document.getElementById("result").style.display = "none";

      fetch("/v1/tts", {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify(body)
      }).then(function (resp) {
        if (!resp.ok) {
          return resp.json().then(function (res) { throw new Error(res.message || "Request failed"); });
        }
        var filename = resp.headers.get("X-Audio-Filename") || "speech.wav";
        return resp.blob().then(function (blob) {
          var url = URL.createObjectURL(blob);
          document.getElementById("player").src = url;
          var dl = document.getElementById("download");
          dl.href = url;
          dl.download = filename;
          document.getElementById("echo").textContent = body.text;
          document.getElementById("result").style.display = "block";
          statusEl.className = "ok";
          statusEl.textContent = "✅ Speech generated successfully!";
        });
      }).catch(function (err) {
        statusEl.className = "error";
        statusEl.textContent = "❌ " + err.message;
      }).finally(function () {
        btn.disabled = false;
      });
    };
  </script>
</body>
</html>
`
