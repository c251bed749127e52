// Package main LeadFinder API
//
// Local business lead generation API. Scrape Google Maps, browse and filter the results, export them and run bulk email or SMS outreach.
//
// Schemes: http, https
// Host: localhost:8080
// BasePath: /api/v1
// Version: 0.1.0
// Contact: iProPixel <info@ipropixel.al> https://ipropixel.al
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// Security:
// - operatorToken: []
//
// SecurityDefinitions:
// operatorToken:
//   type: apiKey
//   name: X-Operator-Token
//   in: header
//   description: Shared operator token guarding the whole API.
//
// swagger:meta
package main
