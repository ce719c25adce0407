// token emite un JWT firmado con JWT_SECRET para llamar a /api cuando la autenticación está activa.
//
// Uso: go run ./cmd/token -sub bodega-central -role admin
// Lee la misma configuración que cmd/api (.env, config.env y variables de entorno).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/inventario-stock/pkg/config"
	"github.com/jhoicas/inventario-stock/pkg/jwt"
)

func main() {
	sub := flag.String("sub", "cli", "subject del token")
	role := flag.String("role", "admin", "rol del token")
	exp := flag.Int("exp", 0, "minutos de validez (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET vacío: la API no exige token")
		os.Exit(1)
	}
	minutes := cfg.JWT.Expiration
	if *exp > 0 {
		minutes = *exp
	}

	token, err := jwt.Generate(cfg.JWT.Secret, *sub, *role, cfg.JWT.Issuer, minutes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Firmar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
