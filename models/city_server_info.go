// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"net"
	"strconv"
)

// CityServerInfo describes a city server a client may connect to after login.
//
// Values are produced from the directory (login service) listing and handed
// to the city-selection screen. All fields are unexported and only readable
// through getters, so a constructed value never changes for the lifetime of
// the session.
type CityServerInfo struct {
	name        string
	description string
	thumbnail   uint64
	ip          string
	port        int
}

// NewCityServerInfo constructs [CityServerInfo] from the directory data.
//
// port is the port clients use to talk to the city server. It is NOT the
// port the city server uses to talk to the login service.
func NewCityServerInfo(name, description string, thumbnail uint64, ip string, port int) CityServerInfo {
	return CityServerInfo{
		name:        name,
		description: description,
		thumbnail:   thumbnail,
		ip:          ip,
		port:        port,
	}
}

// Name returns the name of the city this server represents.
func (c CityServerInfo) Name() string {
	return c.name
}

// Description returns the city description shown in the city selection dialog.
func (c CityServerInfo) Description() string {
	return c.description
}

// Thumbnail returns the ID of the city thumbnail image.
func (c CityServerInfo) Thumbnail() uint64 {
	return c.thumbnail
}

// IP returns the address clients connect to.
func (c CityServerInfo) IP() string {
	return c.ip
}

// Port returns the client-facing port of the city server.
func (c CityServerInfo) Port() int {
	return c.port
}

// Address returns the dialable host:port of the city server.
func (c CityServerInfo) Address() string {
	return net.JoinHostPort(c.ip, strconv.Itoa(c.port))
}

func (c CityServerInfo) String() string {
	return fmt.Sprintf("%s (%s)", c.name, c.Address())
}
