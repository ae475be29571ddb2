package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"gorm.io/gorm"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/models"
)

var es *elasticsearch.Client

// ConnectElastic initializes the Elasticsearch client from ES_ADDR, ES_USER
// and ES_PASSWORD. The cluster is optional; search falls back to the local
// ranker when ES_ADDR is unset.
func ConnectElastic() error {
	addr := config.GetEnv("ES_ADDR")
	if addr == "" {
		return nil
	}

	cfg := elasticsearch.Config{
		Addresses: []string{addr},
		Username:  config.GetEnv("ES_USER"),
		Password:  config.GetEnv("ES_PASSWORD"),
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		},
	}

	var err error
	es, err = elasticsearch.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("could not connect to Elasticsearch: %w", err)
	}

	log.Println("Elasticsearch connected")
	return nil
}

// ElasticEnabled reports whether a cluster is configured
func ElasticEnabled() bool {
	return es != nil
}

// IndexPropertiesToES bulk indexes every active property into the
// "properties" index
func IndexPropertiesToES(db *gorm.DB) error {
	if es == nil {
		return fmt.Errorf("elasticsearch client is not initialized")
	}

	var properties []models.Property
	if err := db.Preload("Rooms").
		Where("status = ?", constants.PropertyStatusActive).
		Find(&properties).Error; err != nil {
		return err
	}

	var buf strings.Builder
	for _, p := range properties {
		meta := fmt.Sprintf(`{ "index" : { "_index" : "properties", "_id" : "%d" } }`, p.ID)
		buf.WriteString(meta + "\n")

		doc, err := json.Marshal(p)
		if err != nil {
			log.Printf("could not serialize property %d for indexing: %v", p.ID, err)
			continue
		}
		buf.WriteString(string(doc) + "\n")
	}

	if buf.Len() == 0 {
		return nil
	}

	res, err := es.Bulk(bytes.NewReader([]byte(buf.String())), es.Bulk.WithContext(context.Background()))
	if err != nil {
		return fmt.Errorf("bulk index request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk index returned %s", res.Status())
	}

	log.Printf("indexed %d properties", len(properties))
	return nil
}

// SearchPropertiesES runs a fuzzy multi-field search against the properties
// index and returns matching IDs in score order
func SearchPropertiesES(query string, size int) ([]uint, error) {
	if es == nil {
		return nil, fmt.Errorf("elasticsearch client is not initialized")
	}
	if size <= 0 {
		size = 20
	}

	searchQuery := map[string]interface{}{
		"size": size,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"should": []map[string]interface{}{
					{"multi_match": map[string]interface{}{
						"query":     query,
						"fields":    []string{"name^3", "city^2", "country", "description", "amenities"},
						"fuzziness": "AUTO",
					}},
					{"match_phrase_prefix": map[string]interface{}{
						"name": query,
					}},
				},
				"minimum_should_match": 1,
			},
		},
		"sort": []map[string]interface{}{
			{"_score": "desc"},
		},
	}

	res, err := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex("properties"),
		es.Search.WithBody(esutil.NewJSONReader(searchQuery)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var result struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID uint `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		ids = append(ids, hit.Source.ID)
	}
	return ids, nil
}
