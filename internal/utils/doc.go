// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the transport
// adapters: a preconfigured resty HTTP client and request id generation.
package utils
