package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

func main() {
	outDir := flag.String("out", "dist", "Diretório de saída")
	skipBuild := flag.Bool("skip-build", false, "Apenas exportar assets, sem compilar")
	seed := flag.Int64("seed", 1, "Semente usada nas texturas exportadas")
	wait := flag.Bool("wait", runtime.GOOS == "windows", "Aguardar Enter antes de sair")
	flag.Parse()

	fmt.Println(ColorCyan + "╔══════════════════════════════════════╗" + ColorReset)
	fmt.Println(ColorCyan + "║       VoxelCake Native Builder       ║" + ColorReset)
	fmt.Println(ColorCyan + "╚══════════════════════════════════════╝" + ColorReset)

	start := time.Now()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fatal(err, *wait)
	}

	// 1. Compilar Diorama
	if !*skipBuild {
		if err := buildDiorama(*outDir); err != nil {
			fatal(err, *wait)
		}
	}

	// 2. Exportar Assets
	fmt.Println(ColorYellow + "\n[+] Exportando assets..." + ColorReset)
	files, err := exportAssets(*outDir, *seed)
	if err != nil {
		fatal(err, *wait)
	}
	for _, f := range files {
		fmt.Printf(ColorGreen+"  - %s"+ColorReset+"\n", f)
	}

	fmt.Printf("\n"+ColorCyan+"Build finalizada com sucesso em %v!"+ColorReset+"\n", time.Since(start).Round(time.Second))
	fmt.Printf(ColorYellow+"Dica: Execute o '%s' para ver o diorama."+ColorReset+"\n", binaryName("voxelcake"))

	if *wait {
		fmt.Println("\nPressione Enter para sair...")
		fmt.Scanln()
	}
}

func binaryName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}

func guiLDFlags() string {
	if runtime.GOOS == "windows" {
		return "-s -w -H=windowsgui"
	}
	return "-s -w"
}

// dioramaPkg é o pacote compilado como executável do diorama.
const dioramaPkg = "./diorama"

// buildEnv monta as variáveis extras do `go build`: raylib exige CGO e, no Windows, o gcc do MSYS2.
func buildEnv(goos, path string) []string {
	env := []string{"CGO_ENABLED=1"}
	if goos != "windows" {
		return env
	}
	const msysPath = `C:\msys64\mingw64\bin`
	if !strings.Contains(path, msysPath) {
		env = append(env, "PATH="+msysPath+";"+path)
	}
	return append(env, "CC=gcc")
}

// buildArgs retorna os argumentos do `go build` para gerar o executável em outDir.
func buildArgs(pkg, outDir string) (args []string, output string) {
	output = filepath.Join(outDir, binaryName("voxelcake"))
	return []string{"build", "-trimpath", "-ldflags", guiLDFlags(), "-o", output, pkg}, output
}

func buildDiorama(outDir string) error {
	fmt.Println(ColorYellow + "\n[+] Compilando DIORAMA (CGO + GUI)..." + ColorReset)

	env := buildEnv(runtime.GOOS, os.Getenv("PATH"))
	for _, kv := range env {
		key, _, _ := strings.Cut(kv, "=")
		fmt.Printf("  - %s definido\n", key)
	}

	args, output := buildArgs(dioramaPkg, outDir)
	cmd := exec.Command("go", args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("falha ao compilar %s: %w", dioramaPkg, err)
	}

	fmt.Printf(ColorGreen+"  - Diorama compilado com sucesso -> %s"+ColorReset+"\n", output)
	return nil
}

func fatal(err error, wait bool) {
	fmt.Printf("\n"+ColorRed+"[ERRO FATAL] %v"+ColorReset+"\n", err)
	if wait {
		fmt.Println("Pressione Enter para sair...")
		fmt.Scanln()
	}
	os.Exit(1)
}
