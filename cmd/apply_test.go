package cmd

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/pacemeta/pacemeta/pkg/catalog"
	"github.com/pacemeta/pacemeta/pkg/reconcile"
)

func strPtr(s string) *string {
	return &s
}

func TestRenderPlan(t *testing.T) {
	res := &reconcile.Result{
		Proposed: []reconcile.Change{
			{
				ItemID: "season1",
				Key:    "season 1",
				Fields: catalog.Fields{Title: strPtr("East Blue")},
			},
			{
				ItemID: "ep13",
				Key:    "1-3",
				Fields: catalog.Fields{
					Title:   strPtr("Romance Dawn"),
					Summary: strPtr("Dawn of the adventure."),
					AirDate: strPtr("2021-03-06"),
				},
			},
		},
	}

	snaps.MatchSnapshot(t, renderPlan(res))
}

func TestRenderPlanEmpty(t *testing.T) {
	if got := renderPlan(&reconcile.Result{}); got != "no updates needed" {
		t.Errorf("renderPlan() = %q, want %q", got, "no updates needed")
	}
}
