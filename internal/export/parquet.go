package export

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/menulytics/menulytics/internal/cloudwriter"
	"github.com/menulytics/menulytics/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// ParquetDestination writes one data.parquet per topic, either on the
// local filesystem or streamed to a cloud bucket.
type ParquetDestination struct {
	basePath string
	folder   string

	mu      sync.Mutex
	writers map[string]*writer.ParquetWriter
	files   map[string]source.ParquetFile

	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

func NewParquetDestination(cfg *models.Config) (*ParquetDestination, error) {
	p := &ParquetDestination{
		basePath: cfg.OutputPath,
		folder:   cfg.OutputFolder,
		writers:  make(map[string]*writer.ParquetWriter),
		files:    make(map[string]source.ParquetFile),
	}

	if cfg.OutputDestination != "" && cfg.OutputDestination != "local" {
		switch cfg.CloudStorage.Provider {
		case "s3":
			factory, err := cloudwriter.NewS3WriterFactory(cfg.CloudStorage.Region)
			if err != nil {
				return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
			}
			p.cloudWriterFactory = factory
			p.cloudBucketName = cfg.CloudStorage.BucketName
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.CloudStorage.Provider)
		}
	}

	return p, nil
}

func (p *ParquetDestination) WriteMessage(topic string, msg []byte) error {
	p.mu.Lock()
	pw, ok := p.writers[topic]
	if !ok {
		var err error
		pw, err = p.createWriter(topic)
		if err != nil {
			p.mu.Unlock()
			return fmt.Errorf("failed to create parquet writer: %w", err)
		}
	}
	p.mu.Unlock()

	switch topic {
	case TopicSalesRecords:
		var row SalesRow
		if err := json.Unmarshal(msg, &row); err != nil {
			return err
		}
		return pw.Write(row)
	case TopicForecasts:
		var row ForecastRow
		if err := json.Unmarshal(msg, &row); err != nil {
			return err
		}
		return pw.Write(row)
	case TopicRecommendations:
		var row RecommendationRow
		if err := json.Unmarshal(msg, &row); err != nil {
			return err
		}
		return pw.Write(row)
	default:
		return fmt.Errorf("unknown export topic: %s", topic)
	}
}

// createWriter must be called with p.mu held.
func (p *ParquetDestination) createWriter(topic string) (*writer.ParquetWriter, error) {
	var fw source.ParquetFile
	if p.cloudWriterFactory != nil {
		objectPath := filepath.Join(p.folder, topic, "data.parquet")
		cw, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		fw = newCloudParquetFile(cw)
	} else {
		dir := filepath.Join(p.basePath, p.folder, topic)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
		var err error
		fw, err = local.NewLocalFileWriter(filepath.Join(dir, "data.parquet"))
		if err != nil {
			return nil, fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	schema, err := newRow(topic)
	if err != nil {
		return nil, err
	}

	pw, err := writer.NewParquetWriter(fw, schema, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}

	p.writers[topic] = pw
	p.files[topic] = fw
	return pw, nil
}

func (p *ParquetDestination) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var lastErr error
	for topic, pw := range p.writers {
		if err := pw.WriteStop(); err != nil {
			lastErr = err
			log.Printf("Error closing parquet writer for topic %s: %v", topic, err)
		}
		if f, ok := p.files[topic]; ok {
			if err := f.Close(); err != nil {
				lastErr = err
				log.Printf("Error closing parquet file for topic %s: %v", topic, err)
			}
		}
	}
	return lastErr
}

// cloudParquetFile adapts a CloudWriter to the write side of
// source.ParquetFile. Reads and seeks from the end are not supported.
type cloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func newCloudParquetFile(cw cloudwriter.CloudWriter) *cloudParquetFile {
	return &cloudParquetFile{cloudWriter: cw}
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(b []byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(b []byte) (int, error) {
	return c.cloudWriter.Write(b)
}

func (c *cloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
