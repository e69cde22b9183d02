/*
# Module: catalog/catalog.go
Product catalog loading from embedded default, local file or S3.

## Linked Modules
- [types/product](../types/product.go) - Product catalog data structures

## Tags
catalog, config, yaml, s3

## Exports
Load, Default, ObjectGetter

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "catalog/catalog.go" ;
    code:description "Product catalog loading from embedded default, local file or S3" ;
    code:linksTo [
        code:name "types/product" ;
        code:path "../types/product.go" ;
        code:relationship "Product catalog data structures"
    ] ;
    code:exports :Load, :Default, :ObjectGetter ;
    code:tags "catalog", "config", "yaml", "s3" .
<!-- End LinkedDoc RDF -->
*/
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gopkg.in/yaml.v3"

	"members-card/types"
)

//go:embed default.yaml
var defaultCatalog []byte

// ObjectGetter is the slice of the S3 API the catalog loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Load resolves the catalog from source: an "s3://bucket/key" URI, a local
// file path, or the embedded default when source is empty. The catalog is
// configuration, not code - price or name changes mean swapping the file,
// not redeploying logic.
func Load(ctx context.Context, source string, objects ObjectGetter) (types.ProductItem, error) {
	var (
		data []byte
		err  error
	)

	switch {
	case source == "":
		data = defaultCatalog
	case strings.HasPrefix(source, "s3://"):
		data, err = fetchS3(ctx, source, objects)
		if err != nil {
			return types.ProductItem{}, err
		}
		log.Printf("📦 Catalog loaded from %s", source)
	default:
		data, err = os.ReadFile(source)
		if err != nil {
			return types.ProductItem{}, fmt.Errorf("failed to read catalog file: %w", err)
		}
		log.Printf("📦 Catalog loaded from %s", source)
	}

	return parse(data)
}

// Default returns the embedded catalog bundle.
func Default() types.ProductItem {
	item, err := parse(defaultCatalog)
	if err != nil {
		// The embedded file ships with the binary; failing to parse it is
		// a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return item
}

func fetchS3(ctx context.Context, uri string, objects ObjectGetter) ([]byte, error) {
	if objects == nil {
		return nil, fmt.Errorf("S3 client not initialized")
	}

	bucket, key, ok := strings.Cut(strings.TrimPrefix(uri, "s3://"), "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid catalog S3 URI: %s", uri)
	}

	out, err := objects.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog object from S3: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog object body: %w", err)
	}
	return data, nil
}

func parse(data []byte) (types.ProductItem, error) {
	var item types.ProductItem
	if err := yaml.Unmarshal(data, &item); err != nil {
		return types.ProductItem{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := validate(item); err != nil {
		return types.ProductItem{}, err
	}
	return item, nil
}

func validate(item types.ProductItem) error {
	for name, v := range map[string]int64{
		"unitPrice1": item.UnitPrice1,
		"unitPrice2": item.UnitPrice2,
		"postage":    item.Postage,
		"fee":        item.Fee,
	} {
		if v < 0 {
			return fmt.Errorf("catalog field %s must be non-negative, got %d", name, v)
		}
	}
	if len(item.ProductName1) == 0 || len(item.ProductName2) == 0 {
		return fmt.Errorf("catalog product name maps must not be empty")
	}
	return nil
}
