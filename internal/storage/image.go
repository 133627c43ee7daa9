package storage

import (
	"bytes"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// Dimensões herdadas das transformações aplicadas às imagens no serviço
// original: avatar vira thumb quadrado, comprovante é limitado a 800x600.
const (
	AvatarSize     = 400
	ProofMaxWidth  = 800
	ProofMaxHeight = 600

	webpQuality = 80
)

// EncodeAvatar decodifica a imagem enviada, recorta o centro em quadrado,
// reduz para AvatarSize e reencoda em webp.
func EncodeAvatar(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	crop := SquareRect(src.Bounds())
	dst := image.NewRGBA(image.Rect(0, 0, AvatarSize, AvatarSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)

	return encodeWebp(dst)
}

// EncodeProof decodifica o comprovante e o ajusta para caber em
// ProofMaxWidth x ProofMaxHeight mantendo a proporção; imagens menores
// não são ampliadas.
func EncodeProof(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	w, h := FitWithin(b.Dx(), b.Dy(), ProofMaxWidth, ProofMaxHeight)
	if w == b.Dx() && h == b.Dy() {
		return encodeWebp(src)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	return encodeWebp(dst)
}

func encodeWebp(m image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, m, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SquareRect devolve o maior quadrado centralizado dentro de b.
func SquareRect(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	if w == h {
		return b
	}
	if w > h {
		off := (w - h) / 2
		return image.Rect(b.Min.X+off, b.Min.Y, b.Min.X+off+h, b.Max.Y)
	}
	off := (h - w) / 2
	return image.Rect(b.Min.X, b.Min.Y+off, b.Max.X, b.Min.Y+off+w)
}

// FitWithin reduz (w, h) proporcionalmente para caber em (maxW, maxH);
// nunca amplia.
func FitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}

	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}
