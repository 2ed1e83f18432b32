package assets

import (
	"io/fs"
	"strings"
	"testing"
)

func TestClientTree(t *testing.T) {
	for _, name := range []string{"index.html", "static/app.js", "static/style.css"} {
		if _, err := fs.Stat(Client(), name); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
}

func TestClientChainsCues(t *testing.T) {
	js, err := fs.ReadFile(Client(), "static/app.js")
	if err != nil {
		t.Fatal(err)
	}
	// back-to-back playback: the next clip starts from the previous one's ended event
	if !strings.Contains(string(js), "onended") {
		t.Fatal("app.js should chain cue clips on ended")
	}
}
