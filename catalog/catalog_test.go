package catalog

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	item := Default()

	assert.Equal(t, int64(21000), item.UnitPrice1)
	assert.Equal(t, int64(13500), item.UnitPrice2)
	assert.Equal(t, int64(0), item.Postage)
	assert.Equal(t, int64(300), item.Fee)
	assert.Equal(t, "キャンバストートバッグ", item.ProductName1["ja"])
	assert.Equal(t, "デニムジャケット", item.ProductName2["ja"])
}

func TestLoadEmptySourceUsesDefault(t *testing.T) {
	item, err := Load(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), item)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := []byte(`unitPrice1: 500
unitPrice2: 800
postage: 120
fee: 0
productName1:
  ja: 商品A
  en: Item A
productName2:
  ja: 商品B
  en: Item B
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	item, err := Load(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(500), item.UnitPrice1)
	assert.Equal(t, int64(120), item.Postage)
	assert.Equal(t, "Item A", item.ProductName1["en"])
}

func TestLoadFileMissing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadRejectsNegativePrice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := []byte(`unitPrice1: -1
unitPrice2: 0
postage: 0
fee: 0
productName1:
  ja: 商品A
productName2:
  ja: 商品B
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	_, err := Load(context.Background(), path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unitPrice1")
}

func TestLoadRejectsEmptyNameMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unitPrice1: 100\nunitPrice2: 100\n"), 0o644))

	_, err := Load(context.Background(), path, nil)
	assert.Error(t, err)
}

type stubObjectGetter struct {
	bucket string
	key    string
	body   []byte
	err    error
}

func (s *stubObjectGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.bucket = *params.Bucket
	s.key = *params.Key
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(s.body))}, nil
}

func TestLoadS3(t *testing.T) {
	getter := &stubObjectGetter{body: []byte(`unitPrice1: 100
unitPrice2: 200
postage: 0
fee: 0
productName1:
  ja: 商品A
productName2:
  ja: 商品B
`)}

	item, err := Load(context.Background(), "s3://store-config/catalog.yaml", getter)
	require.NoError(t, err)
	assert.Equal(t, "store-config", getter.bucket)
	assert.Equal(t, "catalog.yaml", getter.key)
	assert.Equal(t, int64(200), item.UnitPrice2)
}

func TestLoadS3InvalidURI(t *testing.T) {
	_, err := Load(context.Background(), "s3://just-a-bucket", &stubObjectGetter{})
	assert.Error(t, err)
}

func TestLoadS3NilClient(t *testing.T) {
	_, err := Load(context.Background(), "s3://bucket/key", nil)
	assert.Error(t, err)
}
