package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	puts []*s3.PutObjectInput
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, in)
	return &s3.PutObjectOutput{}, nil
}

func pngBytes(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestUpload_ReencodaEGravaNoBucket(t *testing.T) {
	fake := &fakeS3{}
	store := NewLogoStoreWithClient(fake, "logos-bucket", "https://cdn.example.com", 512, zerolog.Nop())

	url, err := store.Upload(context.Background(), 42, pngBytes(t, 100, 100))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/logos/42.webp", url)
	require.Len(t, fake.puts, 1)
	assert.Equal(t, "logos-bucket", *fake.puts[0].Bucket)
	assert.Equal(t, "logos/42.webp", *fake.puts[0].Key)
	assert.Equal(t, "image/webp", *fake.puts[0].ContentType)
}

func TestUpload_ImagemInvalida(t *testing.T) {
	fake := &fakeS3{}
	store := NewLogoStoreWithClient(fake, "logos-bucket", "", 512, zerolog.Nop())

	_, err := store.Upload(context.Background(), 1, bytes.NewBufferString("não é imagem"))
	assert.Error(t, err)
	assert.Empty(t, fake.puts)
}

func TestUpload_NaoConfigurado(t *testing.T) {
	store := NewLogoStoreWithClient(nil, "", "", 512, zerolog.Nop())

	assert.False(t, store.Enabled())
	_, err := store.Upload(context.Background(), 1, pngBytes(t, 10, 10))
	assert.Error(t, err)
}

func TestFit_ReduzSemAmpliar(t *testing.T) {
	small := image.NewRGBA(image.Rect(0, 0, 100, 50))
	assert.Equal(t, small.Bounds(), fit(small, 512).Bounds())

	big := image.NewRGBA(image.Rect(0, 0, 2048, 1024))
	resized := fit(big, 512)
	assert.Equal(t, 512, resized.Bounds().Dx())
	assert.Equal(t, 256, resized.Bounds().Dy())

	tall := image.NewRGBA(image.Rect(0, 0, 1024, 2048))
	resized = fit(tall, 512)
	assert.Equal(t, 512, resized.Bounds().Dy())
	assert.Equal(t, 256, resized.Bounds().Dx())
}
