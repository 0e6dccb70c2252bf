// Copyright 2024 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import "github.com/ecodeclub/eshop/internal/product/internal/domain"

type SNReq struct {
	SN string `json:"sn"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListResp struct {
	Total    int64     `json:"total,omitempty"`
	Products []Product `json:"products,omitempty"`
}

type SaveReq struct {
	Product Product `json:"product"`
}

type SaveResp struct {
	ID int64 `json:"id"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Product struct {
	ID       int64     `json:"id,omitempty"`
	SN       string    `json:"sn"`
	Name     string    `json:"name"`
	Desc     string    `json:"desc"`
	Status   uint8     `json:"status,omitempty"`
	Variants []Variant `json:"variants,omitempty"`
}

type Variant struct {
	ID    int64  `json:"id,omitempty"`
	SN    string `json:"sn"`
	Name  string `json:"name"`
	Size  string `json:"size"`
	Price int64  `json:"price"`
	Stock int64  `json:"stock"`
}

func newProduct(p domain.Product) Product {
	res := Product{
		ID:     p.ID,
		SN:     p.SN,
		Name:   p.Name,
		Desc:   p.Desc,
		Status: p.Status.ToUint8(),
	}
	for _, v := range p.Variants {
		res.Variants = append(res.Variants, Variant{
			ID:    v.ID,
			SN:    v.SN,
			Name:  v.Name,
			Size:  v.Size,
			Price: v.Price,
			Stock: v.Stock,
		})
	}
	return res
}

func (p Product) toDomain() domain.Product {
	res := domain.Product{
		ID:     p.ID,
		SN:     p.SN,
		Name:   p.Name,
		Desc:   p.Desc,
		Status: domain.Status(p.Status),
	}
	if res.Status == 0 {
		res.Status = domain.StatusOffShelf
	}
	for _, v := range p.Variants {
		res.Variants = append(res.Variants, domain.Variant{
			ID:        v.ID,
			ProductID: p.ID,
			SN:        v.SN,
			Name:      v.Name,
			Size:      v.Size,
			Price:     v.Price,
			Stock:     v.Stock,
			Status:    res.Status,
		})
	}
	return res
}
