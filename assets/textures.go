package assets

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/bloeys/glribbon/gpu"
	"github.com/mandykoh/prism"
)

type TextureLoadOptions struct {
	// FlipY flips the image vertically so that UV (0,0) is the bottom-left of the image, as OpenGL expects
	FlipY bool
	// Parallelism is the number of goroutines used for color conversion. Defaults to 2
	Parallelism int
}

type Texture struct {
	// Path is empty for generated textures
	Path   string
	TexID  uint32
	Width  int32
	Height int32
	Pixels []byte

	ctx gpu.Context
}

// Bind binds the texture to the given texture unit (0 for GL_TEXTURE0 and so on)
func (t *Texture) Bind(unit uint32) {
	t.ctx.ActiveTexture(unit)
	t.ctx.BindTexture(gpu.Texture2D, t.TexID)
}

// Delete frees the GPU texture. Calling it more than once is a no-op.
func (t *Texture) Delete() {

	if t.TexID == 0 {
		return
	}

	t.ctx.DeleteTexture(t.TexID)
	t.TexID = 0
}

// DecodeImage decodes png, jpeg, bmp, or webp data into 8-bit non-premultiplied RGBA
func DecodeImage(r io.Reader, opts TextureLoadOptions) (*image.NRGBA, error) {

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = 2
	}

	nrgbaImg := prism.ConvertImageToNRGBA(img, parallelism)
	if opts.FlipY {
		flipRows(nrgbaImg)
	}

	return nrgbaImg, nil
}

func flipRows(img *image.NRGBA) {

	height := img.Rect.Dy()
	rowLen := img.Rect.Dx() * 4
	tmp := make([]byte, rowLen)

	for y := 0; y < height/2; y++ {

		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottom := img.Pix[(height-1-y)*img.Stride : (height-1-y)*img.Stride+rowLen]

		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

func LoadTexture(ctx gpu.Context, texPath string, opts TextureLoadOptions) (Texture, error) {

	file, err := os.Open(texPath)
	if err != nil {
		return Texture{}, err
	}
	defer file.Close()

	img, err := DecodeImage(file, opts)
	if err != nil {
		return Texture{}, fmt.Errorf("failed to decode texture '%s': %w", texPath, err)
	}

	tex := newTextureFromNRGBA(ctx, img)
	tex.Path = texPath
	return tex, nil
}

// NewCheckerTexture generates a size*size checkerboard with cells*cells squares of the two colors
func NewCheckerTexture(ctx gpu.Context, size, cells int, c1, c2 color.NRGBA) Texture {

	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	cellSize := size / cells
	if cellSize == 0 {
		cellSize = 1
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {

			c := c1
			if (x/cellSize+y/cellSize)%2 == 1 {
				c = c2
			}

			img.SetNRGBA(x, y, c)
		}
	}

	return newTextureFromNRGBA(ctx, img)
}

func newTextureFromNRGBA(ctx gpu.Context, img *image.NRGBA) Texture {

	width := img.Rect.Dx()
	height := img.Rect.Dy()

	// Sub-images can have a stride bigger than their width
	pixels := img.Pix
	if img.Stride != width*4 {
		pixels = make([]byte, 0, width*height*4)
		for y := 0; y < height; y++ {
			pixels = append(pixels, img.Pix[y*img.Stride:y*img.Stride+width*4]...)
		}
	}

	tex := Texture{
		TexID:  ctx.GenTexture(),
		Width:  int32(width),
		Height: int32(height),
		Pixels: pixels,
		ctx:    ctx,
	}

	tex.Bind(0)
	ctx.TexImage2DRGBA(tex.Width, tex.Height, tex.Pixels)

	return tex
}
