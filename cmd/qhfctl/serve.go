package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"github.com/spf13/cobra"

	"qhfkit/internal/render"
	"qhfkit/pkg/qhf"
	"qhfkit/pkg/types"
)

var (
	servePort   string
	serveLatin1 bool
)

func init() {
	cmd := newServeCmd()
	cmd.Flags().StringVarP(&servePort, "port", "p", "3000", "Port to listen on")
	cmd.Flags().BoolVar(&serveLatin1, "latin1", false, "Re-decode non-UTF-8 strings as ISO 8859-1")
	rootCmd.AddCommand(cmd)
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve <dir>",
		Short: "Serve decoded histories from a directory over HTTP",
		Long: `The serve command exposes a read-only JSON API over a directory of
QHF archives. Decoded histories are cached briefly and invalidated when
the file on disk changes.

Endpoints:
  GET /api/health             liveness check
  GET /api/histories          list of .qhf files in the directory
  GET /api/histories/:name    one decoded history as JSON

Example:
  qhfctl serve histories/ -p 8080`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(args[0])
		},
	}
}

func runServe(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	srv := &historyServer{
		dir:   dir,
		opts:  types.DecodeOptions{Latin1Fallback: serveLatin1},
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/api/histories", srv.handleList)
	r.GET("/api/histories/:name", srv.handleGet)

	printInfo("http://127.0.0.1:%s\n", servePort)
	return r.Run(":" + servePort)
}

type historyServer struct {
	dir   string
	opts  types.DecodeOptions
	cache *gocache.Cache
}

func (s *historyServer) handleList(c *gin.Context) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".qhf") {
			names = append(names, e.Name())
		}
	}
	c.JSON(http.StatusOK, gin.H{"histories": names})
}

func (s *historyServer) handleGet(c *gin.Context) {
	// Base strips any path components a client may smuggle into the name.
	name := filepath.Base(c.Param("name"))
	if !strings.EqualFold(filepath.Ext(name), ".qhf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must end in .qhf"})
		return
	}
	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "history not found"})
		return
	}

	key := name + "|" + info.ModTime().UTC().Format(time.RFC3339Nano)
	if cached, ok := s.cache.Get(key); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	hist, err := qhf.DecodeFile(path, s.opts)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	doc := render.NewDocument(hist)
	s.cache.Set(key, doc, gocache.DefaultExpiration)
	c.JSON(http.StatusOK, doc)
}
