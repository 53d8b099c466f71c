package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/badriyvp/musegen/internal/logging"
	"github.com/badriyvp/musegen/internal/netx"
	sc "github.com/badriyvp/musegen/internal/server/config"
	"github.com/badriyvp/musegen/internal/server/imagegen"
	"github.com/badriyvp/musegen/internal/server/models"
	"github.com/badriyvp/musegen/internal/server/repositories/repomanager"
)

const historyLimit = 50

// ImageService proxies image generation to the provider, mirrors the
// short-lived result into object storage when a bucket is configured, and
// keeps a per-user history.
type ImageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	generator   imagegen.Generator
	config      *sc.Config
	logger      logging.Logger
}

func NewImageService(db *sql.DB, m repomanager.RepositoryManager, g imagegen.Generator, cfg *sc.Config, l logging.Logger) *ImageService {
	return &ImageService{
		db:          db,
		repomanager: m,
		generator:   g,
		config:      cfg,
		logger:      l.With("module", "image_service"),
	}
}

// GetRandomStorageKey builds a date-bucketed object key for a mirrored image.
func GetRandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("images/%d/%d/%d/%v.png", d.Year(), d.Month(), d.Day(), uuid.New())
}

// Generate runs one provider call for the prompt and records a history row.
// Mirroring into object storage is best-effort: a mirror failure keeps the
// provider URL and is logged, not surfaced to the caller.
func (s *ImageService) Generate(ctx context.Context, userID, prompt string) (*models.Generation, error) {
	s.logger.Debug(ctx, "requesting image generation", "user_id", userID, "prompt_len", len(prompt))

	result, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generation error: %w", err)
	}

	gen := &models.Generation{
		UserID:        userID,
		Prompt:        prompt,
		RevisedPrompt: result.RevisedPrompt,
		URL:           result.URL,
	}

	if s.config.S3Bucket != "" {
		key, err := s.mirrorImage(ctx, result.URL)
		if err != nil {
			s.logger.Warn(ctx, "image mirror failed", "error", err.Error())
		} else {
			gen.StorageKey = key
		}
	}

	repo := s.repomanager.Generations(s.db)
	created, err := repo.Create(ctx, gen)
	if err != nil {
		return nil, fmt.Errorf("error saving generation: %w", err)
	}

	return created, nil
}

// History returns the user's recent generations, newest first. Mirrored
// images get a fresh presigned GET URL in place of the provider's expired one.
func (s *ImageService) History(ctx context.Context, userID string) ([]*models.Generation, error) {
	repo := s.repomanager.Generations(s.db)

	gens, err := repo.ListByUser(ctx, userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing generations: %w", err)
	}

	if s.config.S3Bucket == "" {
		return gens, nil
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		s.logger.Warn(ctx, "presign client unavailable", "error", err.Error())
		return gens, nil
	}

	bucket := s.config.S3Bucket
	for _, gen := range gens {
		if gen.StorageKey == "" {
			continue
		}
		req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: &bucket,
			Key:    &gen.StorageKey,
		}, s3.WithPresignExpires(15*time.Minute))
		if err != nil {
			continue
		}
		gen.URL = req.URL
	}

	return gens, nil
}

func (s *ImageService) mirrorImage(ctx context.Context, url string) (string, error) {
	data, err := netx.DownloadBytes(ctx, url)
	if err != nil {
		return "", err
	}

	client, err := s.getS3Client()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey()

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", err
	}

	return key, nil
}

func (s *ImageService) getS3Client() (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return client, nil
}

func (s *ImageService) getPresignClient() (*s3.PresignClient, error) {
	client, err := s.getS3Client()
	if err != nil {
		return nil, err
	}
	return s3.NewPresignClient(client), nil
}
