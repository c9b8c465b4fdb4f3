package affect

import "time"

// VfxService plays cosmetic effects. It is never required for correctness.
type VfxService interface {
	Play(vfxUID int, target Target, scale, offsetY float64, duration time.Duration) VfxToken
	Stop(token VfxToken)
}

// NullVfx plays nothing.
type NullVfx struct{}

func (NullVfx) Play(int, Target, float64, float64, time.Duration) VfxToken { return VfxToken{} }
func (NullVfx) Stop(VfxToken)                                             {}
