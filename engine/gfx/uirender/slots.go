package uirender

import "github.com/aldergfx/alder/engine/core"

// bindTexture returns the sampler slot for t within the current batch,
// binding it into a free slot on a miss. When all slots are taken the batch
// is flushed first, which drains the table back to just the white texture in
// slot 0, and t lands in slot 1. Rebinding the same texture is free.
func (rd *Renderer) bindTexture(t core.Texture) float32 {
	for i := 0; i < rd.texCnt; i++ {
		if rd.texArr[i] == t {
			return float32(i)
		}
	}
	if rd.texCnt >= MaxTextureSlots {
		rd.flush()
	}
	rd.texArr[rd.texCnt] = t
	rd.texCnt++
	return float32(rd.texCnt - 1)
}
