package controllers

import (
	"errors"
	"net/http"

	"marketplace/dto"
	"marketplace/middlewares"
	"marketplace/pkg/apperr"
	"marketplace/pkg/resp"
	"marketplace/services"
	"marketplace/storage"

	"github.com/gin-gonic/gin"
)

const productImageKind = "products"

type ProductController struct {
	Svc   *services.ProductService
	Files *storage.Local
}

func NewProductController(s *services.ProductService, files *storage.Local) *ProductController {
	return &ProductController{Svc: s, Files: files}
}

// GET /products/:id
func (pc *ProductController) Get(c *gin.Context) {
	params := middlewares.Validated[dto.IDParams](c, middlewares.Params)

	p, err := pc.Svc.Get(c.Request.Context(), params.ID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, "product", p)
}

// GET /products
func (pc *ProductController) GetAll(c *gin.Context) {
	q := middlewares.Validated[dto.ProductQuery](c, middlewares.Query)

	items, meta, err := pc.Svc.List(c.Request.Context(), q)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": items, "meta": meta})
}

// POST /products
func (pc *ProductController) Create(c *gin.Context) {
	p, err := requirePrincipal(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	body := middlewares.Validated[dto.ProductBody](c, middlewares.Body)

	image, err := pc.saveImage(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}

	product, err := pc.Svc.Create(c.Request.Context(), dto.NewCreateProduct(body, p.UserID(), image))
	if err != nil {
		pc.Files.Remove(image)
		resp.Fail(c, err)
		return
	}
	resp.Created(c, "product", product)
}

// PUT /products/:id
func (pc *ProductController) Update(c *gin.Context) {
	if _, err := requirePrincipal(c); err != nil {
		resp.Fail(c, err)
		return
	}
	params := middlewares.Validated[dto.IDParams](c, middlewares.Params)
	body := middlewares.Validated[dto.ProductBody](c, middlewares.Body)

	image, err := pc.saveImage(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}

	product, replaced, err := pc.Svc.Update(c.Request.Context(), dto.NewUpdateProduct(body, params.ID, image))
	if err != nil {
		pc.Files.Remove(image)
		resp.Fail(c, err)
		return
	}
	pc.Files.Remove(replaced)
	resp.OK(c, "product", product)
}

// DELETE /products/:id
func (pc *ProductController) Delete(c *gin.Context) {
	if _, err := requirePrincipal(c); err != nil {
		resp.Fail(c, err)
		return
	}
	params := middlewares.Validated[dto.IDParams](c, middlewares.Params)

	product, err := pc.Svc.Delete(c.Request.Context(), params.ID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	pc.Files.Remove(product.Image)
	resp.OK(c, "product", product)
}

// POST /products/import (multipart "file", xlsx)
func (pc *ProductController) Import(c *gin.Context) {
	p, err := requirePrincipal(c)
	if err != nil {
		resp.Fail(c, err)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			resp.Fail(c, apperr.New(http.StatusRequestEntityTooLarge, "import file too large"))
			return
		}
		resp.Fail(c, apperr.BadRequest("file is required"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		resp.Fail(c, apperr.BadRequest("cannot open file"))
		return
	}
	defer f.Close()

	result, err := pc.Svc.Import(c.Request.Context(), p.UserID(), f)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, "import", result)
}

func (pc *ProductController) saveImage(c *gin.Context) (string, error) {
	files := middlewares.UploadedFiles(c)
	if len(files) == 0 {
		return "", nil
	}
	return pc.Files.Save(productImageKind, files[0])
}
