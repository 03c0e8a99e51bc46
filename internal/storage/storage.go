package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"
)

// Storage persists mirrored recitation audio and hands back the public
// URL clients should play from. Exists reports the public URL for a key
// already stored.
type Storage interface {
	Save(key string, r io.Reader) (string, error)
	Exists(key string) (string, bool)
}

type LocalStorage struct {
	audioDir string
	baseURL  string
}

type SpacesStorage struct {
	client   *s3.S3
	bucket   string
	cdnURL   string
	endpoint string
}

func NewLocalStorage(audioDir, baseURL string) *LocalStorage {
	return &LocalStorage{audioDir: audioDir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func NewSpacesStorage(endpoint, region, bucket, cdnURL, accessKey, secretKey string) (*SpacesStorage, error) {
	config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(false),
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SpacesStorage{
		client:   s3.New(sess),
		bucket:   bucket,
		cdnURL:   strings.TrimSuffix(cdnURL, "/"),
		endpoint: endpoint,
	}, nil
}

func (ls *LocalStorage) Save(key string, r io.Reader) (string, error) {
	path := filepath.Join(ls.audioDir, key)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create audio file: %w", err)
	}
	defer func(dst *os.File) {
		if err := dst.Close(); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to close audio file")
		}
	}(dst)

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to save audio file: %w", err)
	}

	return fmt.Sprintf("%s/%s", ls.baseURL, key), nil
}

func (ls *LocalStorage) Exists(key string) (string, bool) {
	if _, err := os.Stat(filepath.Join(ls.audioDir, key)); err != nil {
		return "", false
	}
	return fmt.Sprintf("%s/%s", ls.baseURL, key), true
}

func (ss *SpacesStorage) Save(key string, r io.Reader) (string, error) {
	// PutObject needs a seekable body.
	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read audio payload: %w", err)
	}

	objectKey := fmt.Sprintf("audio/%s", key)
	_, err = ss.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(ss.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("audio/mpeg"),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload audio to Spaces")
		return "", fmt.Errorf("failed to upload to Spaces: %w", err)
	}

	return fmt.Sprintf("%s/%s", ss.cdnURL, objectKey), nil
}

func (ss *SpacesStorage) Exists(key string) (string, bool) {
	objectKey := fmt.Sprintf("audio/%s", key)
	_, err := ss.client.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(ss.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s/%s", ss.cdnURL, objectKey), true
}
