package imgutil

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
)

const (
	// MinQuality は FitWithin が品質を下げる下限です。
	MinQuality  = 10
	qualityStep = 15
)

// CompressToJPEG は画像データ（PNG, GIF, JPEG等）をJPEG形式に圧縮します。
// image.Decodeがサポートするフォーマットに対応しています。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return encodeJPEG(img, quality)
}

// FitWithin は画像が maxBytes を超える場合に JPEG へ再圧縮します。
// 収まるまで品質を段階的に下げ、MinQuality でも超える場合は最小の結果を返します。
// 再圧縮した場合は recompressed が true になり、MIME タイプは image/jpeg です。
// maxBytes が 0 以下なら上限なしとして元データを返します。
func FitWithin(data []byte, maxBytes, quality int) (out []byte, recompressed bool, err error) {
	if maxBytes <= 0 || len(data) <= maxBytes {
		return data, false, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("画像のデコードに失敗しました: %w", err)
	}

	q := clampQuality(quality)
	for {
		out, err = encodeJPEG(img, q)
		if err != nil {
			return nil, false, err
		}
		if len(out) <= maxBytes || q <= MinQuality {
			return out, true, nil
		}
		q = max(q-qualityStep, MinQuality)
	}
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func clampQuality(q int) int {
	switch {
	case q < MinQuality:
		return MinQuality
	case q > 100:
		return 100
	default:
		return q
	}
}
