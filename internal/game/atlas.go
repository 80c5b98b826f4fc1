package game

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Atlas descriptor modes.
const (
	modeIndividual = "individual"
	modePacked     = "packed"
)

// uvRect is a pixel-space rectangle inside the packed atlas image. It is
// the canonical representation; normalized UVs are derived from it on
// demand (Texture.SubTexture) so the two cannot drift apart.
type uvRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type frameDef struct {
	File string  `json:"file"`
	UV   *uvRect `json:"uv"`
}

type animationDef struct {
	FrameCount int        `json:"frameCount"`
	FPS        float64    `json:"fps"`
	Durations  []float64  `json:"durations"`
	Loop       bool       `json:"loop"`
	Frames     []frameDef `json:"frames"`
}

type spriteDef struct {
	File      string        `json:"file"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Points    int           `json:"points"`
	UV        *uvRect       `json:"uv"`
	Animation *animationDef `json:"animation"`
}

type atlasMeta struct {
	Mode         string `json:"mode"`
	SpritePath   string `json:"spritePath"`
	AtlasTexture string `json:"atlasTexture"`
	AtlasWidth   int    `json:"atlasWidth"`
	AtlasHeight  int    `json:"atlasHeight"`
	Padding      int    `json:"padding"`
}

type atlasDoc struct {
	Version int                  `json:"version"`
	Meta    atlasMeta            `json:"meta"`
	Sprites map[string]spriteDef `json:"sprites"`
}

// parseAtlas decodes and validates a descriptor. Schema violations on
// required fields are a hard failure for the whole load.
func parseAtlas(data []byte) (*atlasDoc, error) {
	var doc atlasDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse atlas descriptor: %w", err)
	}
	if len(doc.Sprites) == 0 {
		return nil, fmt.Errorf("atlas descriptor: no sprites")
	}

	switch doc.Meta.Mode {
	case modePacked:
		if doc.Meta.AtlasTexture == "" {
			return nil, fmt.Errorf("atlas descriptor: packed mode requires meta.atlasTexture")
		}
		if doc.Meta.AtlasWidth <= 0 || doc.Meta.AtlasHeight <= 0 {
			return nil, fmt.Errorf("atlas descriptor: packed mode requires atlasWidth/atlasHeight")
		}
		for name, s := range doc.Sprites {
			if s.UV == nil {
				return nil, fmt.Errorf("atlas descriptor: packed sprite %q has no uv", name)
			}
			if s.Animation != nil {
				for i, f := range s.Animation.Frames {
					if f.UV == nil {
						return nil, fmt.Errorf("atlas descriptor: packed sprite %q frame %d has no uv", name, i)
					}
				}
			}
		}
	case modeIndividual:
		for name, s := range doc.Sprites {
			if s.File == "" {
				return nil, fmt.Errorf("atlas descriptor: sprite %q has no file", name)
			}
			if s.Animation != nil {
				for i, f := range s.Animation.Frames {
					if f.File == "" {
						return nil, fmt.Errorf("atlas descriptor: sprite %q frame %d has no file", name, i)
					}
				}
			}
		}
	default:
		return nil, fmt.Errorf("atlas descriptor: unknown mode %q", doc.Meta.Mode)
	}

	for name, s := range doc.Sprites {
		if s.Width <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("atlas descriptor: sprite %q has no size", name)
		}
		if a := s.Animation; a != nil && a.FrameCount != len(a.Frames) {
			return nil, fmt.Errorf("atlas descriptor: sprite %q frameCount %d != %d frames",
				name, a.FrameCount, len(a.Frames))
		}
	}
	return &doc, nil
}

// SpriteMeta is the runtime view of one atlas entry: size, score value and
// the resolved animation frames (always at least one).
type SpriteMeta struct {
	Name   string
	Width  float32
	Height float32
	Points int

	Frames    []*Texture
	FPS       float64
	Durations []float64 // optional, overrides FPS when present
	Loop      bool
}

func (m SpriteMeta) FrameCount() int { return len(m.Frames) }

// decodedImage is one finished decode job. Failed jobs carry their error;
// a failing sprite never cancels its siblings.
type decodedImage struct {
	sprite string
	frame  int // 0 = base image, 1.. = animation frames
	img    image.Image
	err    error
}

// AtlasLoad is the handle for an in-flight load. Decoding runs off the
// frame thread; Commit performs the GL uploads and must run on it.
type AtlasLoad struct {
	doc    *atlasDoc
	dir    string
	err    error
	images []decodedImage
	done   chan struct{}
}

// Ready reports whether decoding has settled (success or accounted failure).
func (l *AtlasLoad) Ready() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Wait blocks until decoding settles. The frame scheduler calls this at
// most once, before entering the running phase.
func (l *AtlasLoad) Wait() { <-l.done }

func (l *AtlasLoad) Err() error { return l.err }

// TextureManager resolves an atlas descriptor into name→texture and
// name→metadata mappings and owns the GPU lifetime of everything it loads.
type TextureManager struct {
	textures map[string]*Texture
	meta     map[string]SpriteMeta
	owned    []*Texture
}

func NewTextureManager() *TextureManager {
	return &TextureManager{
		textures: make(map[string]*Texture),
		meta:     make(map[string]SpriteMeta),
	}
}

// BeginLoad parses the descriptor and starts decoding images on worker
// goroutines. A malformed descriptor settles the handle immediately with a
// hard error.
func (m *TextureManager) BeginLoad(path string) *AtlasLoad {
	l := &AtlasLoad{done: make(chan struct{})}

	data, err := os.ReadFile(path)
	if err != nil {
		l.err = fmt.Errorf("read atlas descriptor: %w", err)
		close(l.done)
		return l
	}
	doc, err := parseAtlas(data)
	if err != nil {
		l.err = err
		close(l.done)
		return l
	}
	l.doc = doc
	l.dir = filepath.Dir(path)

	go l.decode()
	return l
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func (l *AtlasLoad) decode() {
	defer close(l.done)

	switch l.doc.Meta.Mode {
	case modePacked:
		// Exactly one image; every sprite is an alias into it. Losing it
		// loses every sprite, so this one failure is hard.
		path := filepath.Join(l.dir, l.doc.Meta.AtlasTexture)
		img, err := decodeImageFile(path)
		if err != nil {
			l.err = fmt.Errorf("packed atlas image: %w", err)
			return
		}
		l.images = []decodedImage{{img: img}}

	case modeIndividual:
		type job struct {
			sprite string
			frame  int
			file   string
		}
		var jobs []job
		for name, s := range l.doc.Sprites {
			jobs = append(jobs, job{name, 0, s.File})
			if s.Animation != nil {
				for i, f := range s.Animation.Frames {
					jobs = append(jobs, job{name, i + 1, f.File})
				}
			}
		}

		results := make([]decodedImage, len(jobs))
		var wg sync.WaitGroup
		for i, j := range jobs {
			wg.Add(1)
			go func(i int, j job) {
				defer wg.Done()
				img, err := decodeImageFile(filepath.Join(l.dir, l.doc.Meta.SpritePath, j.file))
				results[i] = decodedImage{sprite: j.sprite, frame: j.frame, img: img, err: err}
			}(i, j)
		}
		wg.Wait()
		l.images = results
	}
}

// Commit uploads every decoded image and registers sprite metadata. Must
// run on the frame thread once the load is Ready. Per-sprite decode
// failures are logged and replaced with a magenta fallback; they never
// abort the commit.
func (m *TextureManager) Commit(l *AtlasLoad) error {
	if !l.Ready() {
		return fmt.Errorf("atlas commit before load settled")
	}
	if l.err != nil {
		return l.err
	}

	switch l.doc.Meta.Mode {
	case modePacked:
		atlas := newTextureFromImage(l.images[0].img)
		m.owned = append(m.owned, atlas)
		for name, s := range l.doc.Sprites {
			frames := []*Texture{atlas.SubTexture(s.UV.X, s.UV.Y, s.UV.Width, s.UV.Height)}
			if s.Animation != nil {
				for _, f := range s.Animation.Frames {
					frames = append(frames, atlas.SubTexture(f.UV.X, f.UV.Y, f.UV.Width, f.UV.Height))
				}
			}
			m.register(name, s, frames)
		}

	case modeIndividual:
		decoded := make(map[string]map[int]decodedImage)
		for _, d := range l.images {
			if decoded[d.sprite] == nil {
				decoded[d.sprite] = make(map[int]decodedImage)
			}
			decoded[d.sprite][d.frame] = d
		}
		for name, s := range l.doc.Sprites {
			total := 1
			if s.Animation != nil {
				total += len(s.Animation.Frames)
			}
			frames := make([]*Texture, 0, total)
			for i := 0; i < total; i++ {
				d, ok := decoded[name][i]
				if !ok || d.err != nil {
					if d.err != nil {
						log.Printf("atlas: sprite %q frame %d: %v (using fallback)", name, i, d.err)
					}
					frames = append(frames, m.fallbackTexture())
					continue
				}
				t := newTextureFromImage(d.img)
				m.owned = append(m.owned, t)
				frames = append(frames, t)
			}
			m.register(name, s, frames)
		}
	}
	return nil
}

func (m *TextureManager) register(name string, s spriteDef, frames []*Texture) {
	meta := SpriteMeta{
		Name:   name,
		Width:  float32(s.Width),
		Height: float32(s.Height),
		Points: s.Points,
		Frames: frames,
	}
	if a := s.Animation; a != nil {
		meta.FPS = a.FPS
		meta.Durations = a.Durations
		meta.Loop = a.Loop
	}
	m.textures[name] = frames[0]
	m.meta[name] = meta
}

// fallbackTexture is the shared loud-magenta stand-in for unresolvable
// sprite images.
func (m *TextureManager) fallbackTexture() *Texture {
	if t, ok := m.textures["__fallback"]; ok {
		return t
	}
	return m.CreateSolidColor("__fallback", 255, 0, 255, 255)
}

// Texture returns the frame-0 texture for a sprite name, or nil for
// unknown names.
func (m *TextureManager) Texture(name string) *Texture {
	return m.textures[name]
}

// Meta returns sprite metadata by name.
func (m *TextureManager) Meta(name string) (SpriteMeta, bool) {
	meta, ok := m.meta[name]
	return meta, ok
}

// CreateSolidColor synthesizes and registers a 1x1 texture.
func (m *TextureManager) CreateSolidColor(name string, r, g, b, a uint8) *Texture {
	t := newSolidTexture(r, g, b, a)
	m.owned = append(m.owned, t)
	m.textures[name] = t
	m.meta[name] = SpriteMeta{Name: name, Width: 1, Height: 1, Frames: []*Texture{t}}
	return t
}

// ReleaseAll deterministically frees every owned GL texture. Idempotent:
// a second call finds nothing left to free.
func (m *TextureManager) ReleaseAll() {
	for _, t := range m.owned {
		t.Release()
	}
	m.owned = m.owned[:0]
	m.textures = make(map[string]*Texture)
	m.meta = make(map[string]SpriteMeta)
}
