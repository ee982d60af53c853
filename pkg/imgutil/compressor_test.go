package imgutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"testing"
)

// テスト用のダミー画像（10x10の赤い正方形）を作成するヘルパー
func createDummyImageData(t *testing.T, format string) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}

	buf := new(bytes.Buffer)
	var err error
	switch format {
	case "png":
		err = png.Encode(buf, img)
	case "jpeg":
		err = jpeg.Encode(buf, img, nil)
	default:
		t.Fatalf("unsupported format: %s", format)
	}

	if err != nil {
		t.Fatalf("failed to encode dummy image: %v", err)
	}
	return buf.Bytes()
}

func TestCompressToJPEG(t *testing.T) {
	t.Run("正常なPNG画像をJPEGに圧縮できること", func(t *testing.T) {
		pngData := createDummyImageData(t, "png")

		got, err := CompressToJPEG(pngData, 75)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(got) == 0 {
			t.Error("expected output data, but got empty")
		}

		// 出力がJPEGとしてデコード可能か確認
		_, format, err := image.Decode(bytes.NewReader(got))
		if err != nil {
			t.Errorf("failed to decode output image: %v", err)
		}
		if format != "jpeg" {
			t.Errorf("expected format jpeg, got %s", format)
		}
	})

	t.Run("不正なデータを与えた場合にエラーを返すこと", func(t *testing.T) {
		invalidData := []byte("this is not an image")
		_, err := CompressToJPEG(invalidData, 75)
		if err == nil {
			t.Error("expected error for invalid data, but got nil")
		}
	})

	t.Run("Quality設定によってサイズが変化すること", func(t *testing.T) {
		input := createDummyImageData(t, "png")

		highQuality, _ := CompressToJPEG(input, 100)
		lowQuality, _ := CompressToJPEG(input, 10)

		if len(lowQuality) >= len(highQuality) {
			t.Errorf("low quality size (%d) should be smaller than high quality size (%d)", len(lowQuality), len(highQuality))
		}
	})
}

// ノイズ画像は PNG で圧縮が効かないため、サイズ上限のテストに使う
func createNoisyPNG(t *testing.T, size int) []byte {
	t.Helper()
	r := rand.New(rand.NewSource(1))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			img.Set(x, y, color.RGBA{uint8(r.Intn(256)), uint8(r.Intn(256)), uint8(r.Intn(256)), 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("failed to encode noisy image: %v", err)
	}
	return buf.Bytes()
}

func TestFitWithin(t *testing.T) {
	t.Run("上限以下ならそのまま返すこと", func(t *testing.T) {
		input := createDummyImageData(t, "png")

		got, recompressed, err := FitWithin(input, len(input), 75)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if recompressed {
			t.Error("expected no recompression")
		}
		if !bytes.Equal(got, input) {
			t.Error("expected original bytes")
		}
	})

	t.Run("上限が0なら制限しないこと", func(t *testing.T) {
		input := createNoisyPNG(t, 64)

		_, recompressed, err := FitWithin(input, 0, 75)
		if err != nil || recompressed {
			t.Errorf("expected passthrough, got recompressed=%v err=%v", recompressed, err)
		}
	})

	t.Run("上限を超える画像はJPEGに再圧縮されること", func(t *testing.T) {
		input := createNoisyPNG(t, 200)

		got, recompressed, err := FitWithin(input, len(input)/4, 90)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !recompressed {
			t.Fatal("expected recompression")
		}
		if len(got) >= len(input) {
			t.Errorf("output (%d) should be smaller than input (%d)", len(got), len(input))
		}
		_, format, err := image.Decode(bytes.NewReader(got))
		if err != nil || format != "jpeg" {
			t.Errorf("expected jpeg output, got format=%s err=%v", format, err)
		}
	})

	t.Run("上限を超える不正なデータはエラーになること", func(t *testing.T) {
		_, _, err := FitWithin([]byte("this is not an image"), 4, 75)
		if err == nil {
			t.Error("expected error for invalid data, but got nil")
		}
	})
}
