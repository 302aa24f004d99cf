package catalog

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_catalog.go github.com/pacemeta/pacemeta/pkg/catalog Client,ArtworkUploader
