package archive

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/orders"
)

// R2Archive keeps a plain-text copy of every printed receipt in R2,
// keyed receipts/<date>/<orderID>.txt, so disputes about what was
// rung up can be settled after the thermal paper is gone.
type R2Archive struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewR2Archive reads the R2_* environment. Returns nil without error
// when R2_ENDPOINT is unset: archival is optional.
func NewR2Archive(ctx context.Context) (*R2Archive, error) {
	endpoint := os.Getenv("R2_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}
	accessKey := os.Getenv("R2_ACCESS_KEY")
	secretKey := os.Getenv("R2_SECRET_KEY")
	bucket := os.Getenv("R2_BUCKET_NAME")
	baseURL := os.Getenv("R2_PUBLIC_BASE_URL")

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
		config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					if service == s3.ServiceID {
						return aws.Endpoint{URL: endpoint, SigningRegion: "auto"}, nil
					}
					return aws.Endpoint{}, &aws.EndpointNotFoundError{}
				},
			),
		),
	)
	if err != nil {
		return nil, err
	}

	return &R2Archive{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// ReceiptKey builds the storage key for an order's receipt.
func ReceiptKey(order *orders.Order, at time.Time) string {
	return fmt.Sprintf("receipts/%s/%s.txt", at.Format("2006-01-02"), order.ID)
}

// UploadReceipt stores the text rendering of a receipt.
func (r *R2Archive) UploadReceipt(ctx context.Context, order *orders.Order, text string) error {
	key := ReceiptKey(order, time.Now())
	contentType := "text/plain; charset=utf-8"

	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &r.bucket,
		Key:         &key,
		Body:        strings.NewReader(text),
		ContentType: &contentType,
	})
	return err
}

// URL returns the public URL of an archived key, "" when no public
// base is configured.
func (r *R2Archive) URL(key string) string {
	if r.baseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", r.baseURL, key)
}
