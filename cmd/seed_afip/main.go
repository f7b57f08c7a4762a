// seed_afip genera el script SQL para poblar las tablas paramétricas AFIP
// (responsabilidades fiscales, clases de documento y relaciones de emisión)
// a partir del XML del catálogo ParametrosAFIP.xml.
//
// Uso: go run ./cmd/seed_afip [ruta/ParametrosAFIP.xml]
// Por defecto busca ParametrosAFIP.xml en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_afip.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type parametros struct {
	Responsabilidades struct {
		Valores []responsabilidad `xml:"responsabilidad"`
	} `xml:"responsabilidades"`
	Clases struct {
		Valores []clase `xml:"clase"`
	} `xml:"clases"`
	Relaciones struct {
		Valores []relacion `xml:"relacion"`
	} `xml:"relaciones"`
}

type responsabilidad struct {
	Codigo string `xml:"codigo,attr"`
	Nombre string `xml:"nombre,attr"`
}

type clase struct {
	Codigo int    `xml:"codigo,attr"`
	Nombre string `xml:"nombre,attr"`
}

type relacion struct {
	Clase    int    `xml:"clase,attr"`
	Emisor   string `xml:"emisor,attr"`
	Receptor string `xml:"receptor,attr"`
}

func main() {
	xmlPath := "ParametrosAFIP.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var p parametros
	dec := xml.NewDecoder(f)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&p); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_afip.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Tablas paramétricas AFIP: responsabilidades, clases de documento y\n")
	out.WriteString("-- relaciones de emisión. Generado desde ParametrosAFIP.xml.\n\n")

	out.WriteString("-- 1. Responsabilidades fiscales\n")
	for _, r := range p.Responsabilidades.Valores {
		if r.Codigo == "" || r.Nombre == "" {
			continue
		}
		fmt.Fprintf(out, "INSERT INTO responsibilities (id, code, name)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid(), '%s', '%s')\n", escapeSQL(r.Codigo), escapeSQL(r.Nombre))
		out.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name;\n")
	}
	out.WriteString("\n-- 2. Clases de documento (código AFIP)\n")
	for _, c := range p.Clases.Valores {
		if c.Codigo == 0 || c.Nombre == "" {
			continue
		}
		fmt.Fprintf(out, "INSERT INTO document_classes (id, afip_code, name)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid(), %d, '%s')\n", c.Codigo, escapeSQL(c.Nombre))
		out.WriteString("ON CONFLICT (afip_code) DO UPDATE SET name = EXCLUDED.name;\n")
	}
	out.WriteString("\n-- 3. Relaciones emisor → receptor por clase de documento\n")
	for _, rel := range p.Relaciones.Valores {
		if rel.Clase == 0 || rel.Emisor == "" || rel.Receptor == "" {
			continue
		}
		fmt.Fprintf(out, "INSERT INTO responsibility_relations (id, document_class_id, issuer_code, receptor_code)\n")
		fmt.Fprintf(out, "SELECT gen_random_uuid(), id, '%s', '%s' FROM document_classes WHERE afip_code = %d\n",
			escapeSQL(rel.Emisor), escapeSQL(rel.Receptor), rel.Clase)
		out.WriteString("ON CONFLICT DO NOTHING;\n")
	}

	fmt.Printf("Generado %s: %d responsabilidades, %d clases, %d relaciones\n",
		outPath, len(p.Responsabilidades.Valores), len(p.Clases.Valores), len(p.Relaciones.Valores))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
