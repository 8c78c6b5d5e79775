package sim

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/refreshable/cmd/refreshdemo/internal/config"
	"github.com/go-drift/refreshable/pkg/graphics"
)

func run(t *testing.T, yaml string) (*Result, string) {
	t.Helper()
	s, err := config.Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	var out bytes.Buffer
	res, err := NewRunner(s, &out, nil).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return res, out.String()
}

func messages(res *Result, source string) []string {
	var out []string
	for _, e := range res.Events {
		if e.Source == source && !strings.HasPrefix(e.Message, "attached") {
			out = append(out, strings.SplitN(e.Message, " (", 2)[0])
		}
	}
	return out
}

func TestPullToRefreshCycle(t *testing.T) {
	res, out := run(t, `
inset: {top: 10}
pull_to_refresh: {indicator: text}
steps:
  - drag: [-20, -70, -90]
  - release: true
  - settle: true
  - stop_refresh: true
  - settle: true
`)
	if res.RefreshTriggers != 1 {
		t.Errorf("RefreshTriggers = %d, want 1", res.RefreshTriggers)
	}
	want := []string{
		`state pulling "Pulling"`,
		`state releaseToLoad "Release to start refresh"`,
		`state loading "Loading..."`,
		"indicator spinning",
		"action fired",
		"state idle",
		"indicator hidden",
	}
	if diff := cmp.Diff(want, messages(res, "refresh")); diff != "" {
		t.Errorf("refresh events mismatch (-want +got):\n%s", diff)
	}
	if res.FinalInset != (graphics.EdgeInsets{Top: 10}) || res.FinalOffset != -10 {
		t.Errorf("final geometry = inset %+v offset %v", res.FinalInset, res.FinalOffset)
	}
	if !strings.Contains(out, "action fired") {
		t.Errorf("output missing events:\n%s", out)
	}
}

func TestLoadMoreCycle(t *testing.T) {
	res, _ := run(t, `
load_more: {}
steps:
  - scroll: [400, 450, 460]
  - stop_load_more: true
  - content_height: 1500
  - scroll: [900, 940]
  - enable_load_more: false
  - stop_load_more: true
  - scroll: [945, 960]
`)
	if res.LoadMoreTriggers != 2 {
		t.Errorf("LoadMoreTriggers = %d, want 2", res.LoadMoreTriggers)
	}
	want := []string{"refreshing", "action fired", "idle", "refreshing", "action fired", "enabled=false", "idle"}
	if diff := cmp.Diff(want, messages(res, "load-more")); diff != "" {
		t.Errorf("load-more events mismatch (-want +got):\n%s", diff)
	}
	if res.FinalInset.Bottom != 0 {
		t.Errorf("bottom inset = %v, want 0 while disabled", res.FinalInset.Bottom)
	}
}

func TestEventTimestampsFollowFakeClock(t *testing.T) {
	res, _ := run(t, `
pull_to_refresh: {duration: 200ms}
steps:
  - start_refresh: true
  - pump: 1s
`)
	var fired *Event
	for i := range res.Events {
		if res.Events[i].Message == "action fired" {
			fired = &res.Events[i]
		}
	}
	if fired == nil {
		t.Fatal("action never fired")
	}
	if fired.At.Milliseconds() < 200 || fired.At.Milliseconds() > 250 {
		t.Errorf("action fired at %v, want shortly after 200ms", fired.At)
	}
}
