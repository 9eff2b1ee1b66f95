package support

import (
	"strings"
	"testing"
)

const page = `<!DOCTYPE html><html><body>
<ul class="scenarios">
  <li class="scenario"><div class="float-right"><span class="result passed">✔</span></div>
    <div class="scenario-heading"><h2>Eat 5 out of 12</h2></div></li>
  <li class="scenario"><div class="scenario-heading"><h2>Background:</h2></div></li>
</ul>
</body></html>`

func TestDocument(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}

	if got := len(doc.FindByClass("scenario")); got != 2 {
		t.Errorf("FindByClass(scenario) = %d nodes, want 2", got)
	}
	if got := len(doc.FindByTag("h2")); got != 2 {
		t.Errorf("FindByTag(h2) = %d nodes, want 2", got)
	}

	s := doc.Scenario("Eat 5 out of 12")
	if s == nil {
		t.Fatal("scenario not found")
	}
	if got := Result(s); got != "passed" {
		t.Errorf("Result() = %q, want passed", got)
	}
	if got := Result(doc.Scenario("Background:")); got != "" {
		t.Errorf("background Result() = %q, want empty", got)
	}
	if doc.Scenario("missing") != nil {
		t.Error("expected nil for unknown scenario")
	}
}
