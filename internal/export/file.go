package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// CSVDestination writes one data.csv per topic under basePath/folder.
// Headers come from the sorted keys of the first event on each topic.
type CSVDestination struct {
	basePath string
	folder   string
	files    map[string]*os.File
	writers  map[string]*csv.Writer
	headers  map[string][]string
}

func NewCSVDestination(basePath, folder string) *CSVDestination {
	return &CSVDestination{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
		writers:  make(map[string]*csv.Writer),
		headers:  make(map[string][]string),
	}
}

func (c *CSVDestination) WriteMessage(topic string, msg []byte) error {
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}

	w, ok := c.writers[topic]
	if !ok {
		dir := filepath.Join(c.basePath, c.folder, topic)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
		file, err := os.Create(filepath.Join(dir, "data.csv"))
		if err != nil {
			return err
		}
		c.files[topic] = file
		w = csv.NewWriter(file)
		c.writers[topic] = w

		headers := sortedKeys(event)
		if err := w.Write(headers); err != nil {
			return err
		}
		c.headers[topic] = headers
	}

	row := make([]string, len(c.headers[topic]))
	for i, header := range c.headers[topic] {
		if value, ok := event[header]; ok {
			row[i] = fmt.Sprintf("%v", value)
		}
	}
	if err := w.Write(row); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func (c *CSVDestination) Close() error {
	for topic, w := range c.writers {
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
		if err := c.files[topic].Close(); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(event map[string]interface{}) []string {
	keys := make([]string, 0, len(event))
	for key := range event {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// JSONDestination appends newline delimited JSON, one data.json per topic.
type JSONDestination struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONDestination(basePath, folder string) *JSONDestination {
	return &JSONDestination{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONDestination) WriteMessage(topic string, msg []byte) error {
	file, ok := j.files[topic]
	if !ok {
		dir := filepath.Join(j.basePath, j.folder, topic)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
		var err error
		file, err = os.Create(filepath.Join(dir, "data.json"))
		if err != nil {
			return err
		}
		j.files[topic] = file
	}

	if _, err := file.Write(msg); err != nil {
		return err
	}
	_, err := file.WriteString("\n")
	return err
}

func (j *JSONDestination) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}
