package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Stock Watchlist Tracker API
// @version         1.0.0
// @description     Watchlist CRUD, market-data proxy, and AI portfolio chat.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
