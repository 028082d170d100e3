package awsagent

import (
	"context"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/omics-cicd/release-automation/shared/errors"
	"io"
	"strings"
)

const s3Scheme = "s3://"

type S3Location struct {
	Bucket string
	Key    string
}

// ParseS3URI splits s3://bucket/some/key into bucket and key.
func ParseS3URI(uri string) (S3Location, error) {
	if !strings.HasPrefix(uri, s3Scheme) {
		return S3Location{}, errors.Errorf("'%s' is not an s3:// URI", uri)
	}

	bucket, key, _ := strings.Cut(strings.TrimPrefix(uri, s3Scheme), "/")
	if bucket == "" || key == "" {
		return S3Location{}, errors.Errorf("'%s' must name both a bucket and a key", uri)
	}

	return S3Location{Bucket: bucket, Key: key}, nil
}

func (l S3Location) String() string {
	return s3Scheme + l.Bucket + "/" + l.Key
}

func (a *Agent) GetObject(ctx context.Context, location S3Location) ([]byte, error) {
	output, err := a.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(location.Bucket),
		Key:    aws.String(location.Key),
	})
	if err != nil {
		return nil, errors.Errorf("failed to get %s: %w", location, err)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, errors.Errorf("failed to read %s: %w", location, err)
	}

	return data, nil
}
