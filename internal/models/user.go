// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures exchanged with the remote
// WikiSend API. The console owns none of this data: every entity is
// created, updated, and deleted through the API, and these structs mirror
// its canonical JSON schemas one to one.
package models

// User is the staff profile returned alongside the access token on login.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest is the credentials payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the authentication result. The user profile is
// optional — older API deployments return only the token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user,omitempty"`
}
