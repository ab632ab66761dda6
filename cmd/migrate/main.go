// migrate herramienta offline sobre el Entity Store configurado (mismo medio que la API).
//
// Uso:
//
//	go run ./cmd/migrate export -out backup.json [-backend]
//	go run ./cmd/migrate import -in backup.json [-merge] [-clear] [-latin1]
//	go run ./cmd/migrate token -user <id> -role admin
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/application/migration"
	"github.com/jhoicas/Comparador-api/internal/infrastructure/medium"
	"github.com/jhoicas/Comparador-api/internal/infrastructure/memory"
	"github.com/jhoicas/Comparador-api/pkg/config"
	"github.com/jhoicas/Comparador-api/pkg/jwt"
	"github.com/jhoicas/Comparador-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})

	switch os.Args[1] {
	case "export":
		fs := flag.NewFlagSet("export", flag.ExitOnError)
		out := fs.String("out", "", "archivo de salida (por defecto stdout)")
		backend := fs.Bool("backend", false, "llaves snake_case para el backend")
		_ = fs.Parse(os.Args[2:])
		runExport(cfg, log, *out, *backend)
	case "import":
		fs := flag.NewFlagSet("import", flag.ExitOnError)
		in := fs.String("in", "", "documento a importar")
		merge := fs.Bool("merge", false, "merge no destructivo por id o llave natural")
		clearFirst := fs.Bool("clear", false, "vaciar el almacén antes de importar")
		latin1 := fs.Bool("latin1", false, "el documento está codificado en ISO-8859-1")
		_ = fs.Parse(os.Args[2:])
		if *in == "" {
			fail("import: -in es requerido")
		}
		runImport(cfg, log, *in, *latin1, dto.ImportOptions{Merge: *merge, ClearBeforeImport: *clearFirst})
	case "token":
		fs := flag.NewFlagSet("token", flag.ExitOnError)
		user := fs.String("user", "", "id del usuario")
		role := fs.String("role", "admin", "rol del token")
		_ = fs.Parse(os.Args[2:])
		if *user == "" {
			fail("token: -user es requerido")
		}
		tok, err := jwt.Generate(cfg.JWT.Secret, *user, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
		if err != nil {
			fail("generar token: %v", err)
		}
		fmt.Println(tok)
	default:
		usage()
	}
}

func openService(ctx context.Context, cfg *config.Config, log *logger.Logger) (*migration.Service, func()) {
	m, closeMedium, err := medium.Open(ctx, cfg, log)
	if err != nil {
		fail("medio de persistencia: %v", err)
	}
	store, err := memory.Open(ctx, m, log.Component("store"))
	if err != nil {
		closeMedium()
		fail("abrir entity store: %v", err)
	}
	return migration.NewService(store, log.Component("migration")), closeMedium
}

func runExport(cfg *config.Config, log *logger.Logger, outPath string, backend bool) {
	ctx := context.Background()
	svc, closeMedium := openService(ctx, cfg, log)
	defer closeMedium()

	var doc any = svc.ExportAll()
	if backend {
		doc = svc.ExportBackend()
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fail("codificar documento: %v", err)
	}
	if outPath == "" {
		os.Stdout.Write(append(raw, '\n'))
		return
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fail("crear directorio: %v", err)
	}
	if err := os.WriteFile(outPath, raw, 0o644); err != nil {
		fail("escribir %s: %v", outPath, err)
	}
	fmt.Fprintf(os.Stderr, "Exportado %s\n", outPath)
}

func runImport(cfg *config.Config, log *logger.Logger, inPath string, latin1 bool, opts dto.ImportOptions) {
	raw, err := readDocument(inPath, latin1)
	if err != nil {
		fail("leer %s: %v", inPath, err)
	}

	ctx := context.Background()
	svc, closeMedium := openService(ctx, cfg, log)
	defer closeMedium()

	res, err := svc.ImportAll(ctx, raw, opts)
	if err != nil {
		fail("importar: %v", err)
	}

	kinds := make([]string, 0, len(res.Kinds))
	for k := range res.Kinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		r := res.Kinds[k]
		if r.Error != "" {
			fmt.Printf("%-14s ERROR %s (quedan %d)\n", k, r.Error, r.Count)
			continue
		}
		fmt.Printf("%-14s importados %d, total %d\n", k, r.Imported, r.Count)
	}
	if res.Failed() {
		closeMedium()
		os.Exit(2)
	}
}

// readDocument lee el documento; con latin1 lo transcodifica a UTF-8 antes de decodificar el JSON.
func readDocument(path string, latin1 bool) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	return io.ReadAll(r)
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: migrate export -out archivo [-backend] | import -in archivo [-merge] [-clear] [-latin1] | token -user id [-role admin]")
	os.Exit(1)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
