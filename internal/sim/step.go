// Package sim advances the particle set one frame at a time.
package sim

import (
	"math"

	"github.com/iburimskiy/image-particles/internal/config"
	"github.com/iburimskiy/image-particles/internal/particle"
)

// Params are the physics constants of one frame step.
type Params struct {
	RepelRadius    float64
	RepelForce     float64
	PressBoost     float64
	ReturnForce    float64
	Damping        float64
	MaxSpeed       float64
	SettleDistance float64
	SettleSpeed    float64
	Epsilon        float64
}

func DefaultParams() Params {
	return Params{
		RepelRadius:    config.RepelRadius,
		RepelForce:     config.RepelForce,
		PressBoost:     config.PressBoost,
		ReturnForce:    config.ReturnForce,
		Damping:        config.Damping,
		MaxSpeed:       config.MaxSpeed,
		SettleDistance: config.SettleDistance,
		SettleSpeed:    config.SettleSpeed,
		Epsilon:        config.Epsilon,
	}
}

// ParamsFrom copies the physics fields of cfg.
func ParamsFrom(cfg config.Config) Params {
	p := DefaultParams()
	p.RepelRadius = cfg.RepelRadius
	p.RepelForce = cfg.RepelForce
	p.PressBoost = cfg.PressBoost
	p.ReturnForce = cfg.ReturnForce
	p.Damping = cfg.Damping
	p.MaxSpeed = cfg.MaxSpeed
	p.SettleDistance = cfg.SettleDistance
	p.SettleSpeed = cfg.SettleSpeed
	return p
}

// StepParticle advances p by one frame against the pointer ptr.
func StepParticle(p *particle.Particle, ptr particle.Pointer, prm Params) {
	repelled := false
	if ptr.Present {
		dx := p.X - ptr.X
		dy := p.Y - ptr.Y
		dist := math.Hypot(dx, dy) - prm.Epsilon

		if dist < prm.RepelRadius {
			ux, uy := awayFrom(p, dx, dy, dist, prm.Epsilon)
			f := 1 - dist/prm.RepelRadius
			push := prm.RepelForce
			if ptr.Pressed {
				push *= prm.PressBoost
			}
			p.VX += ux * f * push
			p.VY += uy * f * push
			p.Displaced = true
			repelled = true
		}
	}

	if !repelled && p.Displaced {
		tx := p.X0 - p.X
		ty := p.Y0 - p.Y
		p.VX += tx * prm.ReturnForce
		p.VY += ty * prm.ReturnForce

		if math.Abs(tx) < prm.SettleDistance && math.Abs(ty) < prm.SettleDistance && p.Speed() < prm.SettleSpeed {
			p.X, p.Y = p.X0, p.Y0
			p.VX, p.VY = 0, 0
			p.Displaced = false
		}
	}

	p.VX *= prm.Damping
	p.VY *= prm.Damping

	if spd := p.Speed(); spd > prm.MaxSpeed {
		p.VX = p.VX / spd * prm.MaxSpeed
		p.VY = p.VY / spd * prm.MaxSpeed
	}

	p.X += p.VX
	p.Y += p.VY
}

// awayFrom returns the unit vector pointing from the pointer to the particle.
// When both coincide it falls back to the particle's heading, then +x.
func awayFrom(p *particle.Particle, dx, dy, dist, eps float64) (float64, float64) {
	if dist > eps {
		return dx / dist, dy / dist
	}
	if spd := p.Speed(); spd > eps {
		return p.VX / spd, p.VY / spd
	}
	return 1, 0
}
