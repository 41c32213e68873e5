package sdlhost

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 64

// TextureCache keeps rendered labels and icons, evicting the least recently
// used texture once full.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
}

func NewTextureCache(maxSize int) *TextureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Get returns the cached texture for key, creating it with create on a miss.
func (c *TextureCache) Get(key string, create func() (*sdl.Texture, error)) (*sdl.Texture, error) {
	if texture, ok := c.textures[key]; ok {
		c.touch(key)
		return texture, nil
	}

	texture, err := create()
	if err != nil {
		return nil, err
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = texture
	c.order = append(c.order, key)
	return texture, nil
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			copy(c.order[i:], c.order[i+1:])
			c.order[len(c.order)-1] = key
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture := c.textures[oldest]; texture != nil {
		texture.Destroy()
	}
	delete(c.textures, oldest)
}

// Destroy frees every cached texture.
func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		if texture != nil {
			texture.Destroy()
		}
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
