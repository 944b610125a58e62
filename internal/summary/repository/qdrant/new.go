package qdrant

import (
	"productivity-tracker/internal/summary/repository"
	"productivity-tracker/pkg/log"
	"productivity-tracker/pkg/openai"
	pkgQdrant "productivity-tracker/pkg/qdrant"
)

const distanceCosine = "Cosine"

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       openai.IEmbedder
	collectionName string
	vectorSize     int
	l              log.Logger
}

// New creates a Qdrant-backed VectorRepository. Vectors come from embedder.
func New(client *pkgQdrant.Client, embedder openai.IEmbedder, collectionName string, vectorSize int, l log.Logger) repository.VectorRepository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
	}
}
