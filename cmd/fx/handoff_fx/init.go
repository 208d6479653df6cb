package handoff_fx

import (
	"go.uber.org/fx"
	mem "surveyforge/pkg/memcache"
)

var Module = fx.Provide(provideDraftHandoff)

func provideDraftHandoff() mem.DraftHandoffStore {
	return mem.NewDraftHandoff()
}
