// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/what-to-cook/internal/config"
	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/models"
)

// s3PutObjectAPI is the part of *s3.Client the picture storage needs.
type s3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3PictureStorage keeps profile pictures as objects in an S3 bucket.
type s3PictureStorage struct {
	client    s3PutObjectAPI
	bucket    string
	keyPrefix string
}

// NewS3PictureStorage builds an S3 client from cfg. Static credentials are
// used when both keys are set; otherwise the default AWS credential chain
// applies. A custom endpoint switches to path-style addressing, as MinIO
// expects.
func NewS3PictureStorage(ctx context.Context, cfg config.S3, logger *logger.Logger) (PictureStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Debug().Str("bucket", cfg.Bucket).Msg("creating s3 picture storage")
	return newS3PictureStorage(client, cfg.Bucket, cfg.KeyPrefix), nil
}

func newS3PictureStorage(client s3PutObjectAPI, bucket, keyPrefix string) *s3PictureStorage {
	return &s3PictureStorage{client: client, bucket: bucket, keyPrefix: keyPrefix}
}

func (s *s3PictureStorage) Save(ctx context.Context, name string, picture models.Picture) error {
	log := logger.FromContext(ctx)

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.keyPrefix + name),
		Body:          bytes.NewReader(picture.Content),
		ContentLength: aws.Int64(picture.Size()),
	}
	if picture.ContentType != "" {
		input.ContentType = aws.String(picture.ContentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*s3PictureStorage.Save").Str("key", s.keyPrefix+name).Msg("error uploading picture")
		return fmt.Errorf("%w: %w", ErrPictureNotSaved, err)
	}

	return nil
}
