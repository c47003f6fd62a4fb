package service

import (
	"context"
	"sort"

	"servidorinventario/internal/model"
	"servidorinventario/internal/repository"

	"gorm.io/gorm"
)

// Ensure the stubs satisfy the interfaces at compile time.
var (
	_ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)
	_ repository.ProductoRepository  = (*stubProductoRepo)(nil)
	_ repository.UsuarioRepository   = (*stubUsuarioRepo)(nil)
	_ LimpiadorFotos                 = (*stubLimpiador)(nil)
)

// ── In-memory CategoriaRepository stub ───────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[int64]*model.Categoria
	nextID     int64

	// crearErr, when set, fails every insert. Used to exercise the bulk
	// importer's per-line error paths.
	crearErr error
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[int64]*model.Categoria)}
}

func (r *stubCategoriaRepo) Listar(_ context.Context) ([]model.Categoria, error) {
	list := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		list = append(list, *c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nombre < list[j].Nombre })
	return list, nil
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id int64) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *c
	return &copia, nil
}

func (r *stubCategoriaRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if c.Nombre == nombre {
			copia := *c
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) Crear(_ context.Context, c *model.Categoria) error {
	if r.crearErr != nil {
		return r.crearErr
	}
	r.insertar(c)
	return nil
}

func (r *stubCategoriaRepo) CrearTx(_ *gorm.DB, c *model.Categoria) (int64, error) {
	if r.crearErr != nil {
		return 0, r.crearErr
	}
	r.insertar(c)
	return 1, nil
}

func (r *stubCategoriaRepo) ActualizarTx(_ *gorm.DB, id int64, nombre string) (int64, error) {
	c, ok := r.categorias[id]
	if !ok {
		return 0, nil
	}
	c.Nombre = nombre
	return 1, nil
}

func (r *stubCategoriaRepo) EliminarTx(_ *gorm.DB, id int64) (int64, error) {
	if _, ok := r.categorias[id]; !ok {
		return 0, nil
	}
	delete(r.categorias, id)
	return 1, nil
}

func (r *stubCategoriaRepo) ObtenerPorIDTx(_ *gorm.DB, id int64) (*model.Categoria, error) {
	return r.ObtenerPorID(context.Background(), id)
}

// DB returns nil so runTx invokes the callback directly, without a real
// transaction.
func (r *stubCategoriaRepo) DB() *gorm.DB { return nil }

func (r *stubCategoriaRepo) insertar(c *model.Categoria) {
	r.nextID++
	c.ID = r.nextID
	copia := *c
	r.categorias[c.ID] = &copia
}

// ── In-memory ProductoRepository stub ────────────────────────────────────────

// stubProductoRepo resolves the category name through the categoria stub,
// mirroring the LEFT JOIN reads of the real repository.
type stubProductoRepo struct {
	productos  map[int64]*model.Producto
	nextID     int64
	categorias *stubCategoriaRepo

	crearErr error
}

func newStubProductoRepo(categorias *stubCategoriaRepo) *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[int64]*model.Producto), categorias: categorias}
}

func (r *stubProductoRepo) conCategoria(p *model.Producto) model.ProductoConCategoria {
	joined := model.ProductoConCategoria{
		ID:           p.ID,
		Descripcion:  p.Descripcion,
		Cantidad:     p.Cantidad,
		Precio:       p.Precio,
		UnidadMedida: p.UnidadMedida,
		CategoriaID:  p.CategoriaID,
	}
	if c, ok := r.categorias.categorias[p.CategoriaID]; ok {
		nombre := c.Nombre
		joined.NombreCategoria = &nombre
	}
	return joined
}

func (r *stubProductoRepo) Listar(_ context.Context) ([]model.ProductoConCategoria, error) {
	list := make([]model.ProductoConCategoria, 0, len(r.productos))
	for _, p := range r.productos {
		list = append(list, r.conCategoria(p))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Descripcion < list[j].Descripcion })
	return list, nil
}

func (r *stubProductoRepo) ObtenerPorID(_ context.Context, id int64) (*model.ProductoConCategoria, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	joined := r.conCategoria(p)
	return &joined, nil
}

func (r *stubProductoRepo) ListarPorCategoria(_ context.Context, categoriaID int64) ([]model.ProductoConCategoria, error) {
	var list []model.ProductoConCategoria
	for _, p := range r.productos {
		if p.CategoriaID == categoriaID {
			list = append(list, r.conCategoria(p))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Descripcion < list[j].Descripcion })
	return list, nil
}

func (r *stubProductoRepo) Crear(_ context.Context, p *model.Producto) error {
	if r.crearErr != nil {
		return r.crearErr
	}
	r.insertar(p)
	return nil
}

func (r *stubProductoRepo) CrearTx(_ *gorm.DB, p *model.Producto) (int64, error) {
	if r.crearErr != nil {
		return 0, r.crearErr
	}
	r.insertar(p)
	return 1, nil
}

func (r *stubProductoRepo) ActualizarTx(_ *gorm.DB, id int64, p *model.Producto) (int64, error) {
	existente, ok := r.productos[id]
	if !ok {
		return 0, nil
	}
	existente.Descripcion = p.Descripcion
	existente.Cantidad = p.Cantidad
	existente.Precio = p.Precio
	existente.UnidadMedida = p.UnidadMedida
	existente.CategoriaID = p.CategoriaID
	return 1, nil
}

func (r *stubProductoRepo) EliminarTx(_ *gorm.DB, id int64) (int64, error) {
	if _, ok := r.productos[id]; !ok {
		return 0, nil
	}
	delete(r.productos, id)
	return 1, nil
}

func (r *stubProductoRepo) ObtenerPorIDTx(_ *gorm.DB, id int64) (*model.ProductoConCategoria, error) {
	return r.ObtenerPorID(context.Background(), id)
}

func (r *stubProductoRepo) ContarPorCategoriaTx(_ *gorm.DB, categoriaID int64) (int64, error) {
	var total int64
	for _, p := range r.productos {
		if p.CategoriaID == categoriaID {
			total++
		}
	}
	return total, nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

func (r *stubProductoRepo) insertar(p *model.Producto) {
	r.nextID++
	p.ID = r.nextID
	copia := *p
	r.productos[p.ID] = &copia
}

// ── In-memory UsuarioRepository stub ─────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[int64]*model.Usuario
	nextID   int64
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[int64]*model.Usuario)}
}

func (r *stubUsuarioRepo) Listar(_ context.Context) ([]model.Usuario, error) {
	list := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		list = append(list, *u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *stubUsuarioRepo) ObtenerPorID(_ context.Context, id int64) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *u
	return &copia, nil
}

func (r *stubUsuarioRepo) CrearTx(_ *gorm.DB, u *model.Usuario) (int64, error) {
	r.nextID++
	u.ID = r.nextID
	copia := *u
	r.usuarios[u.ID] = &copia
	return 1, nil
}

func (r *stubUsuarioRepo) ActualizarTx(_ *gorm.DB, id int64, u *model.Usuario) (int64, error) {
	existente, ok := r.usuarios[id]
	if !ok {
		return 0, nil
	}
	existente.Nombre = u.Nombre
	existente.Apellido = u.Apellido
	existente.Foto = u.Foto
	return 1, nil
}

func (r *stubUsuarioRepo) EliminarTx(_ *gorm.DB, id int64) (int64, error) {
	if _, ok := r.usuarios[id]; !ok {
		return 0, nil
	}
	delete(r.usuarios, id)
	return 1, nil
}

func (r *stubUsuarioRepo) ObtenerPorIDTx(_ *gorm.DB, id int64) (*model.Usuario, error) {
	return r.ObtenerPorID(context.Background(), id)
}

func (r *stubUsuarioRepo) DB() *gorm.DB { return nil }

// ── Photo cleanup recorder ───────────────────────────────────────────────────

type stubLimpiador struct{ encoladas []string }

func (s *stubLimpiador) EncolarLimpiezaFoto(_ context.Context, foto string) error {
	s.encoladas = append(s.encoladas, foto)
	return nil
}
