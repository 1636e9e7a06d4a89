// Package memory implementa los puertos de repositorio en memoria.
// Lo usan los tests de aplicación y el modo de prueba del CLI (surgictl gs1 --dry-run).
package memory
