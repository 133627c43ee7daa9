package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/washapp/carwash-api/internal/config"
)

const (
	FolderAvatar       = "carwash/avatar"
	FolderPaymentProof = "carwash/payment_proofs"
)

// ImageStore guarda avatares e comprovantes num bucket S3 (ou compatível)
// e referencia cada objeto pela URL pública.
type ImageStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewImageStore(cfg *config.Config) *ImageStore {
	opts := s3.Options{
		Region:       cfg.S3Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	base := strings.TrimSuffix(cfg.S3PublicBaseURL, "/")

	return &ImageStore{
		client:        s3.New(opts),
		bucket:        cfg.S3Bucket,
		publicBaseURL: base,
	}
}

// Upload grava o webp já processado e devolve a URL pública.
func (s *ImageStore) Upload(ctx context.Context, folder, name string, data []byte) (string, error) {
	key := ObjectKey(folder, name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", err
	}

	return s.publicBaseURL + "/" + key, nil
}

// DeleteResult modela a remoção best-effort de um objeto substituído:
// falhas são registradas pelo chamador, nunca viram erro da operação.
type DeleteResult struct {
	OK     bool
	Reason string
}

func (s *ImageStore) Delete(ctx context.Context, url string) DeleteResult {
	key, ok := KeyFromURL(url, s.publicBaseURL)
	if !ok {
		return DeleteResult{OK: false, Reason: "url does not belong to this store"}
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return DeleteResult{OK: false, Reason: err.Error()}
	}
	return DeleteResult{OK: true}
}

func ObjectKey(folder, name string) string {
	return fmt.Sprintf("%s/%s_%s.webp", folder, name, uuid.NewString())
}

func KeyFromURL(url, publicBaseURL string) (string, bool) {
	if publicBaseURL == "" || !strings.HasPrefix(url, publicBaseURL+"/") {
		return "", false
	}
	return strings.TrimPrefix(url, publicBaseURL+"/"), true
}
