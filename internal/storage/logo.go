package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/rs/zerolog"
	"golang.org/x/image/draw"

	"github.com/ultramind-solutions/agendepro/internal/config"
)

// S3API é o recorte do cliente S3 usado pelo LogoStore.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// LogoStore guarda logos de negócios em S3 (ou compatível), sempre
// reencodados como webp e reduzidos a maxSize. Sem bucket configurado
// o upload fica desabilitado.
type LogoStore struct {
	client    S3API
	bucket    string
	publicURL string
	maxSize   int
	log       zerolog.Logger
}

func NewLogoStore(cfg *config.Config, log zerolog.Logger) *LogoStore {
	store := &LogoStore{
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
		maxSize:   cfg.LogoMaxSize,
		log:       log,
	}

	if cfg.S3Bucket == "" || cfg.S3AccessKey == "" {
		return store
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	store.client = s3.New(opts)
	return store
}

// NewLogoStoreWithClient injeta um cliente pronto (testes).
func NewLogoStoreWithClient(client S3API, bucket, publicURL string, maxSize int, log zerolog.Logger) *LogoStore {
	return &LogoStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		maxSize:   maxSize,
		log:       log,
	}
}

func (s *LogoStore) Enabled() bool {
	return s != nil && s.client != nil && s.bucket != ""
}

// Upload decodifica a imagem enviada (png/jpeg), reduz para caber em
// maxSize × maxSize e grava como webp. Retorna a URL pública do logo.
func (s *LogoStore) Upload(ctx context.Context, businessID uint, r io.Reader) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("storage: logo store not configured")
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("storage: decode logo: %w", err)
	}

	img = fit(img, s.maxSize)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("storage: encode webp: %w", err)
	}

	key := fmt.Sprintf("logos/%d.webp", businessID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("storage: s3 put %s: %w", key, err)
	}

	s.log.Info().Uint("business_id", businessID).Str("key", key).Msg("logo uploaded")

	if s.publicURL != "" {
		return s.publicURL + "/" + key, nil
	}
	return key, nil
}

// fit reduz a imagem mantendo proporção; nunca amplia.
func fit(img image.Image, maxSize int) image.Image {
	if maxSize <= 0 {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSize && h <= maxSize {
		return img
	}

	ratio := float64(maxSize) / float64(w)
	if h > w {
		ratio = float64(maxSize) / float64(h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*ratio), int(float64(h)*ratio)))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
