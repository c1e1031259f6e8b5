package util

import (
	"image"
	"image/png"
	"io"
	"os"

	// Register every decoder the command accepts as input.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
)

// DecodeImage 解码任意已注册格式的图片，返回图片和格式名
func DecodeImage(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// OpenImage 打开本地图片
func OpenImage(path string) (image.Image, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = file.Close()
	}()

	return DecodeImage(file)
}

// EncodePNG 以 PNG 格式写出
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG 保存为本地 PNG 文件
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
