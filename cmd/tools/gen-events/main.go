// Command gen-events fabricates synthetic tau-pair decay events in the
// JSON batch format consumed by the phicp tool. The kinematics are
// plausible rather than physical: decay products are smeared around the
// tau flight direction with the right masses and multiplicities for the
// requested decay modes.
package main

import (
	"flag"
	"log"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/htautau-data/phicp.report/internal/eventio"
)

const (
	massTau = 1.77686
	massPi  = 0.13957
	massPi0 = 0.1349768
)

func main() {
	var (
		n     = flag.Int("n", 1000, "number of events to generate")
		seed  = flag.Int64("seed", 1, "random seed")
		mode1 = flag.String("mode1", "rho", "leg 1 decay mode (e, mu, pi, rho, a1)")
		mode2 = flag.String("mode2", "rho", "leg 2 decay mode (pi, rho, a1)")
		out   = flag.String("o", "events.json", "output path")
	)
	flag.Parse()

	rnd := rand.New(rand.NewSource(*seed))
	batch := &eventio.Batch{Events: make([]eventio.Event, *n)}
	for i := range batch.Events {
		batch.Events[i] = eventio.Event{
			Leg1: genLeg(rnd, *mode1, -1),
			Leg2: genLeg(rnd, *mode2, 1),
		}
	}

	if err := eventio.WriteFile(*out, batch); err != nil {
		log.Fatalf("Failed to write events: %v", err)
	}
	log.Printf("wrote %d events (%s x %s) to %s", *n, *mode1, *mode2, *out)
}

func genLeg(rnd *rand.Rand, mode string, charge int) eventio.Leg {
	tauDir := randUnit(rnd)
	tauP := 15 + rnd.Float64()*45
	leg := eventio.Leg{
		Cand:   toP4(r3.Scale(tauP, tauDir), massTau),
		Charge: charge,
		IP:     &eventio.Vec3{X: gauss(rnd, 2e-3), Y: gauss(rnd, 2e-3), Z: gauss(rnd, 4e-3)},
	}

	nPions := 1
	switch mode {
	case "e", "mu":
		nPions = 0
	case "a1":
		nPions = 3
	}
	for j := 0; j < nPions; j++ {
		p := 2 + rnd.Float64()*0.4*tauP
		leg.Pions = append(leg.Pions, toP4(r3.Scale(p, smeared(rnd, tauDir, 0.08)), massPi))
	}
	if mode == "rho" {
		p := 1 + rnd.Float64()*0.3*tauP
		pi0 := toP4(r3.Scale(p, smeared(rnd, tauDir, 0.12)), massPi0)
		leg.Pi0 = &pi0
	}
	return leg
}

func toP4(p r3.Vec, mass float64) eventio.P4 {
	return eventio.P4{
		Px: p.X, Py: p.Y, Pz: p.Z,
		E: math.Sqrt(r3.Norm2(p) + mass*mass),
	}
}

func randUnit(rnd *rand.Rand) r3.Vec {
	// Uniform on the sphere via cos(theta) sampling.
	u := rnd.Float64()*2 - 1
	phi := rnd.Float64() * 2 * math.Pi
	s := math.Sqrt(1 - u*u)
	return r3.Vec{X: s * math.Cos(phi), Y: s * math.Sin(phi), Z: u}
}

// smeared tilts dir by a random perturbation of the given scale.
func smeared(rnd *rand.Rand, dir r3.Vec, scale float64) r3.Vec {
	return r3.Unit(r3.Add(dir, r3.Scale(scale, randUnit(rnd))))
}

func gauss(rnd *rand.Rand, sigma float64) float64 {
	return rnd.NormFloat64() * sigma
}
