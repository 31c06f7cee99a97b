// Package catalog содержит фиксированный каталог товаров витрины.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/mmeshcher/courtside-store/internal/model"
)

// Catalog хранит неизменяемый набор товаров в порядке отображения.
type Catalog struct {
	products []model.Product
	byID     map[int64]int
}

// New создаёт каталог из переданных товаров. Идентификаторы должны быть уникальны.
func New(products []model.Product) *Catalog {
	c := &Catalog{
		products: make([]model.Product, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

// Default возвращает каталог баскетбольных товаров магазина.
func Default() *Catalog {
	return New([]model.Product{
		product(1, "Tênis Nike Air Jordan", "Tênis de basquete com tecnologia Air Max, tamanhos 38-45", "899.90", "👟", model.CategorySneakers, true),
		product(2, "Tênis Adidas Pro Model", "Tênis profissional para quadra, alta performance, tamanhos 36-44", "649.90", "👟", model.CategorySneakers, false),
		product(3, "Tênis Puma Court Rider", "Design moderno, conforto máximo, ideal para treinos, tamanhos 37-43", "459.90", "👟", model.CategorySneakers, false),
		product(4, "Bola de Basquete Spalding", "Bola oficial NBA, couro sintético, tamanho 7 (masculino)", "189.90", "🏀", model.CategoryBalls, true),
		product(5, "Bola de Basquete Wilson", "Bola profissional, alta qualidade, tamanho 6 (feminino)", "159.90", "🏀", model.CategoryBalls, false),
		product(6, "Bola de Basquete Molten", "Bola oficial FIBA, tecnologia avançada, tamanho 7", "219.90", "🏀", model.CategoryBalls, false),
		product(7, "Camiseta NBA Lakers", "Camiseta oficial, 100% algodão, tamanhos P/M/G/GG", "249.90", "👕", model.CategoryShirts, true),
		product(8, "Camiseta NBA Warriors", "Camiseta oficial, tecido tecnológico, tamanhos P/M/G/GG", "249.90", "👕", model.CategoryShirts, false),
		product(9, "Camiseta NBA Bulls", "Camiseta clássica, design retrô, tamanhos P/M/G/GG", "229.90", "👕", model.CategoryShirts, false),
		product(10, "Camiseta NBA Celtics", "Camiseta oficial, conforto premium, tamanhos P/M/G/GG", "249.90", "👕", model.CategoryShirts, false),
		product(11, "Tênis Under Armour Curry", "Assinatura Stephen Curry, tecnologia Flow, tamanhos 38-44", "799.90", "👟", model.CategorySneakers, true),
		product(12, "Bola de Basquete Nike", "Bola premium, design exclusivo, tamanho 7", "199.90", "🏀", model.CategoryBalls, false),
	})
}

func product(id int64, name, description, price, icon string, category model.Category, featured bool) model.Product {
	return model.Product{
		ID:          id,
		Name:        name,
		Description: description,
		UnitPrice:   decimal.RequireFromString(price),
		Icon:        icon,
		Category:    category,
		Featured:    featured,
	}
}

// Product возвращает товар по идентификатору.
func (c *Catalog) Product(id int64) (model.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i], true
}

// All возвращает копию всех товаров в порядке каталога.
func (c *Catalog) All() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByCategory возвращает товары указанного раздела.
func (c *Catalog) ByCategory(category model.Category) []model.Product {
	return c.filter(func(p model.Product) bool { return p.Category == category })
}

// Featured возвращает товары, отмеченные как рекомендуемые.
func (c *Catalog) Featured() []model.Product {
	return c.filter(func(p model.Product) bool { return p.Featured })
}

func (c *Catalog) filter(keep func(model.Product) bool) []model.Product {
	var out []model.Product
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
