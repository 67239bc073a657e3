package main

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/kelseyhightower/envconfig"
)

// ArchiveConfig configures the standalone dataset archiver.
type ArchiveConfig struct {
	DatasetPath      string `envconfig:"DATASET_PATH" default:"data.json"`
	ArchiveBucket    string `envconfig:"ARCHIVE_S3_BUCKET" required:"true"`
	ArchiveEndpoint  string `envconfig:"ARCHIVE_S3_ENDPOINT" required:"true"`
	ArchiveAccessKey string `envconfig:"ARCHIVE_S3_ACCESS_KEY" required:"true"`
	ArchiveSecretKey string `envconfig:"ARCHIVE_S3_SECRET_KEY" required:"true"`
	ArchiveRegion    string `envconfig:"ARCHIVE_S3_REGION" required:"true"`
	KeepArchives     int    `envconfig:"KEEP_ARCHIVES" default:"4"`
}

func main() {
	log.Println("Starting dataset archive run...")

	var cfg ArchiveConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config load error: %v", err)
	}

	data, err := compressDataset(cfg.DatasetPath)
	if err != nil {
		log.Fatalf("Error reading dataset: %v", err)
	}

	s3Client, err := createS3Client(cfg)
	if err != nil {
		log.Fatalf("Error creating S3 client: %v", err)
	}

	fileName := fmt.Sprintf("dataset-%s.json.gz", time.Now().UTC().Format("2006-01-02T15-04-05Z"))
	if err := uploadToS3(s3Client, cfg, fileName, data); err != nil {
		log.Fatalf("Error uploading to S3: %v", err)
	}
	log.Printf("Archive uploaded to s3://%s/%s", cfg.ArchiveBucket, fileName)

	if err := rotateArchives(s3Client, cfg); err != nil {
		log.Fatalf("Error rotating old archives: %v", err)
	}

	log.Println("Archive run completed.")
}

func compressDataset(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	if _, err := gzipWriter.Write(raw); err != nil {
		return nil, err
	}
	if err := gzipWriter.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func createS3Client(cfg ArchiveConfig) (*s3.Client, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: cfg.ArchiveEndpoint,
		}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.ArchiveAccessKey, cfg.ArchiveSecretKey, "")),
		config.WithRegion(cfg.ArchiveRegion),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg), nil
}

func uploadToS3(client *s3.Client, cfg ArchiveConfig, key string, data []byte) error {
	_, err := client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(cfg.ArchiveBucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	return err
}

func rotateArchives(client *s3.Client, cfg ArchiveConfig) error {
	output, err := client.ListObjectsV2(context.TODO(), &s3.ListObjectsV2Input{
		Bucket: aws.String(cfg.ArchiveBucket),
	})
	if err != nil {
		return err
	}

	if len(output.Contents) <= cfg.KeepArchives {
		log.Printf("Fewer than %d archives present, no rotation needed.", cfg.KeepArchives)
		return nil
	}

	sort.Slice(output.Contents, func(i, j int) bool {
		return output.Contents[i].LastModified.After(*output.Contents[j].LastModified)
	})

	for _, obj := range output.Contents[cfg.KeepArchives:] {
		log.Printf("Deleting old archive: %s", *obj.Key)
		_, err := client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
			Bucket: aws.String(cfg.ArchiveBucket),
			Key:    obj.Key,
		})
		if err != nil {
			log.Printf("Error deleting %s: %v", *obj.Key, err)
		}
	}

	return nil
}
