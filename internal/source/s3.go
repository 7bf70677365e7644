// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"os"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tablediff/tablediff/internal/log"
)

// loadAWSConfig loads AWS SDK v2 config, inheriting the shell's AWS setup
// (AWS_PROFILE, shared config, env, IMDS). TABLEDIFF_AWS_REGION overrides
// the region without touching the shared chain.
func loadAWSConfig(ctx context.Context) (awsv2.Config, error) {
	var loadOpts []func(*config.LoadOptions) error
	if region := os.Getenv("TABLEDIFF_AWS_REGION"); region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return awsv2.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

// loadS3 fetches one object's bytes.
func loadS3(ctx context.Context, uri string) ([]byte, error) {
	bucket, key, err := splitS3URI(uri)
	if err != nil {
		return nil, err
	}

	cfg, err := loadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	client := s3v2.NewFromConfig(cfg)

	out, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", uri, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", uri, err)
	}
	log.Debugf("s3 object loaded: bucket=%s key=%s bytes=%d", bucket, key, len(data))
	return data, nil
}
