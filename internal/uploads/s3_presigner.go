package uploads

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Presigner issues presigned PUT URLs against one bucket. It satisfies
// services.Presigner.
type S3Presigner struct {
	bucket string
	client *s3.PresignClient
}

// NewS3Presigner builds a presigner for the given bucket. Static
// credentials are used when supplied; otherwise the default AWS credential
// chain applies.
func NewS3Presigner(ctx context.Context, region string, bucket string, accessKeyID string, secretAccessKey string) (*S3Presigner, error) {
	loadOptions := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if accessKeyID != "" {
		loadOptions = append(loadOptions, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3Presigner{
		bucket: bucket,
		client: s3.NewPresignClient(s3.NewFromConfig(cfg)),
	}, nil
}

func (presigner *S3Presigner) PresignPut(ctx context.Context, key string, contentType string, expires time.Duration) (string, error) {
	request, err := presigner.client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(presigner.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("presign put object: %w", err)
	}
	return request.URL, nil
}
