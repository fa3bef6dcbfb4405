// Profiling:
// go build ./profile/dispatch
// go tool pprof -http=":8000" -nodefraction=0.001 ./dispatch cpu.pprof

package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/edwinsyarief/kiban"
	"github.com/pkg/profile"
)

type config struct {
	Rounds int `env:"KIBAN_PROFILE_ROUNDS" envDefault:"50"`
	Events int `env:"KIBAN_PROFILE_EVENTS" envDefault:"100000"`
	Depth  int `env:"KIBAN_PROFILE_DEPTH" envDefault:"8"`
}

type tick struct {
	Frame int
}

type appState struct {
	Frames int
}

var sink int

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(cfg.Rounds, cfg.Events, cfg.Depth)
	p.Stop()
}

func run(rounds, events, depth int) {
	for range rounds {
		sys := &kiban.System[appState]{}
		chain := kiban.HandlersFor[tick, int](sys)
		for i := 0; i < depth-1; i++ {
			chain.Append(func(e tick, ctx *kiban.Context[tick, int, appState]) int {
				out, ok := ctx.Delegate(e)
				if !ok {
					return e.Frame
				}
				return out + 1
			})
		}
		chain.Append(func(e tick, ctx *kiban.Context[tick, int, appState]) int {
			ctx.State().Frames++
			return e.Frame
		})

		state := appState{}
		total := 0
		for i := 0; i < events; i++ {
			out, _ := kiban.Dispatch[tick, int](sys, tick{Frame: i}, &state)
			total += out
		}

		bus := kiban.NewBus(sys)
		for i := 0; i < events/10; i++ {
			bus.Send(tick{Frame: i})
		}
		total += bus.DispatchAll(&state)
		sink = total
	}
}
