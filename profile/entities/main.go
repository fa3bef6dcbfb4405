// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/edwinsyarief/kiban"
	"github.com/pkg/profile"
)

type config struct {
	Rounds   int `env:"KIBAN_PROFILE_ROUNDS" envDefault:"10"`
	Iters    int `env:"KIBAN_PROFILE_ITERS" envDefault:"100"`
	Entities int `env:"KIBAN_PROFILE_ENTITIES" envDefault:"500"`
}

type position struct {
	X, Y float32
}

type velocity struct {
	VX, VY float32
}

var sink float32

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(cfg.Rounds, cfg.Iters, cfg.Entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := kiban.NewWorld(numEntities)
		kiban.RegisterComponent[position](w)
		kiban.RegisterComponent[velocity](w)
		entities := make([]kiban.Entity, 0, numEntities)

		for range iters {
			entities = entities[:0]
			for i := 0; i < numEntities; i++ {
				entities = append(entities, w.NewEntity())
			}

			pos := kiban.ComponentsMut[position](w)
			vel := kiban.ComponentsMut[velocity](w)
			for _, e := range entities {
				pos.Put(e, position{X: 1, Y: 2})
				vel.Put(e, velocity{VX: 3, VY: 4})
			}
			for _, e := range entities {
				p := pos.Get(e)
				v := vel.Get(e)
				p.X += v.VX
				p.Y += v.VY
			}
			vel.Close()
			pos.Close()

			view := kiban.Components[position](w)
			it := w.Entities()
			total := float32(0)
			for it.Next() {
				if p, ok := view.Get(it.Entity()); ok {
					total += p.X
				}
			}
			view.Close()
			sink = total

			for _, e := range entities {
				w.DropEntity(e)
			}
		}
	}
}
