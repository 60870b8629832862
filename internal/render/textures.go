package render

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

type textureEntry struct {
	tag string
	id  uint32
}

// TextureRegistry holds scene textures in insertion order. Lookups are a
// first-match linear scan, so duplicate tags resolve to the earliest entry.
// Entries are never removed individually; teardown is bulk via Destroy.
type TextureRegistry struct {
	entries []textureEntry
	log     *zap.Logger
}

func NewTextureRegistry(log *zap.Logger) *TextureRegistry {
	return &TextureRegistry{log: log}
}

// Create decodes the image at path and registers the resulting GL texture
// under tag. Decode failures are logged and skipped so the caller proceeds
// with the texture absent; the object renders with its solid color instead.
func (r *TextureRegistry) Create(path, tag string) bool {
	img, err := imgio.Open(path)
	if err != nil {
		r.log.Warn("texture load failed, rendering untextured",
			zap.String("path", path), zap.String("tag", tag), zap.Error(err))
		return false
	}

	nrgba, ok := toNRGBA(img)
	if !ok {
		r.log.Warn("unsupported pixel layout, skipping texture",
			zap.String("path", path), zap.String("tag", tag))
		return false
	}
	b := nrgba.Bounds()

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(nrgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.Add(tag, id)
	r.log.Info("texture loaded",
		zap.String("path", path), zap.String("tag", tag),
		zap.Int("width", b.Dx()), zap.Int("height", b.Dy()))
	return true
}

// Add appends an already-created texture object under tag.
func (r *TextureRegistry) Add(tag string, id uint32) {
	r.entries = append(r.entries, textureEntry{tag: tag, id: id})
}

// FindID returns the GL texture object registered under tag, or -1.
func (r *TextureRegistry) FindID(tag string) int32 {
	for _, e := range r.entries {
		if e.tag == tag {
			return int32(e.id)
		}
	}
	return -1
}

// FindSlot returns the texture unit index tag is bound to by Bind, or -1.
func (r *TextureRegistry) FindSlot(tag string) int32 {
	for i, e := range r.entries {
		if e.tag == tag {
			return int32(i)
		}
	}
	return -1
}

func (r *TextureRegistry) Len() int { return len(r.entries) }

// Bind binds every registered texture to the texture unit matching its
// insertion index.
func (r *TextureRegistry) Bind() {
	for i, e := range r.entries {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, e.id)
	}
}

// Destroy frees all registered textures. Teardown is unconditional and bulk.
func (r *TextureRegistry) Destroy() {
	for i := range r.entries {
		gl.DeleteTextures(1, &r.entries[i].id)
	}
	r.entries = nil
}

// toNRGBA converts a decoded image to tightly packed 4-channel pixels for
// upload. Single-channel images are rejected; the upload path only handles
// RGB/RGBA layouts.
func toNRGBA(img image.Image) (*image.NRGBA, bool) {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return nil, false
	}
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && n.Stride == b.Dx()*4 {
		return n, true
	}
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out, true
}
