// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/accumulo-proxy-login/internal/adapter"
	"github.com/MKhiriev/accumulo-proxy-login/internal/logger"
)

type ClientServices struct {
	SessionService SessionService
}

func NewClientServices(proxyAdapter adapter.ProxyAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService: NewSessionService(proxyAdapter, logger),
	}
}
