package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const maxside = 512

// ToWebp decodifica jpeg/png, reduz para no máximo 512px no lado maior
// e reencoda como webp. Toda imagem persistida passa por aqui.
func ToWebp(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w > maxside || h > maxside {
		if w >= h {
			h = h * maxside / w
			w = maxside
		} else {
			w = w * maxside / h
			h = maxside
		}

		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		src = dst
	}

	var out bytes.Buffer
	if err := webp.Encode(&out, src, &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
