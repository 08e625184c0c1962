package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EntityKind is the closed set of entity kinds the portal displays.
type EntityKind string

const (
	KindLocador   EntityKind = "locador"
	KindLocatario EntityKind = "locatario"
	KindImovel    EntityKind = "imovel"
	KindContrato  EntityKind = "contrato"
)

// EntityKinds lists every kind in display order.
var EntityKinds = []EntityKind{KindLocador, KindLocatario, KindImovel, KindContrato}

// ParseEntityKind accepts singular and plural forms ("locadores", "imoveis", ...).
func ParseEntityKind(raw string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "locador", "locadores":
		return KindLocador, nil
	case "locatario", "locatarios", "locatário", "locatários":
		return KindLocatario, nil
	case "imovel", "imoveis", "imóvel", "imóveis":
		return KindImovel, nil
	case "contrato", "contratos":
		return KindContrato, nil
	}
	return "", fmt.Errorf("unknown entity kind %q", raw)
}

// Plural returns the collection name used in backend paths.
func (k EntityKind) Plural() string {
	switch k {
	case KindLocador:
		return "locadores"
	case KindLocatario:
		return "locatarios"
	case KindImovel:
		return "imoveis"
	case KindContrato:
		return "contratos"
	}
	return string(k)
}

// Label returns the Portuguese display label.
func (k EntityKind) Label() string {
	switch k {
	case KindLocador:
		return "Locador"
	case KindLocatario:
		return "Locatário"
	case KindImovel:
		return "Imóvel"
	case KindContrato:
		return "Contrato"
	}
	return string(k)
}

// Entity is implemented by Locador, Locatario, Imovel and Contrato.
type Entity interface {
	Kind() EntityKind
	EntityID() ID
	DisplayName() string
	// SearchFields returns the values matched by the search module:
	// name, id, phone, email, address and type.
	SearchFields() []string
}

// ContaBancaria is a landlord bank account.
type ContaBancaria struct {
	Banco     string `json:"banco" yaml:"banco"`
	Agencia   string `json:"agencia" yaml:"agencia"`
	Conta     string `json:"conta" yaml:"conta"`
	Titular   string `json:"titular" yaml:"titular"`
	TipoConta string `json:"tipo_conta" yaml:"tipo_conta"`
	ChavePix  string `json:"chave_pix" yaml:"chave_pix"`
}

// Locador is a landlord.
type Locador struct {
	ID         ID              `json:"id" yaml:"id"`
	Nome       string          `json:"nome" yaml:"nome"`
	CPFCNPJ    string          `json:"cpf_cnpj" yaml:"cpf_cnpj"`
	Telefone   string          `json:"telefone" yaml:"telefone"`
	Email      string          `json:"email" yaml:"email"`
	Endereco   string          `json:"endereco" yaml:"endereco"`
	Status     string          `json:"status" yaml:"status"`
	TipoPessoa string          `json:"tipo_pessoa" yaml:"tipo_pessoa"`
	Contas     []ContaBancaria `json:"contas" yaml:"contas"`
}

func (l Locador) Kind() EntityKind    { return KindLocador }
func (l Locador) EntityID() ID        { return l.ID }
func (l Locador) DisplayName() string { return l.Nome }
func (l Locador) SearchFields() []string {
	return []string{l.Nome, string(l.ID), l.Telefone, l.Email, l.Endereco, l.TipoPessoa}
}

// Locatario is a tenant.
type Locatario struct {
	ID        ID     `json:"id" yaml:"id"`
	Nome      string `json:"nome" yaml:"nome"`
	CPFCNPJ   string `json:"cpf_cnpj" yaml:"cpf_cnpj"`
	Telefone  string `json:"telefone" yaml:"telefone"`
	Email     string `json:"email" yaml:"email"`
	Endereco  string `json:"endereco" yaml:"endereco"`
	Status    string `json:"status" yaml:"status"`
	Profissao string `json:"profissao" yaml:"profissao"`
	Tipo      string `json:"tipo" yaml:"tipo"`
}

func (l Locatario) Kind() EntityKind    { return KindLocatario }
func (l Locatario) EntityID() ID        { return l.ID }
func (l Locatario) DisplayName() string { return l.Nome }
func (l Locatario) SearchFields() []string {
	return []string{l.Nome, string(l.ID), l.Telefone, l.Email, l.Endereco, l.Tipo}
}

// Imovel is a property.
type Imovel struct {
	ID           ID     `json:"id" yaml:"id"`
	Codigo       string `json:"codigo" yaml:"codigo"`
	Endereco     string `json:"endereco" yaml:"endereco"`
	Bairro       string `json:"bairro" yaml:"bairro"`
	Cidade       string `json:"cidade" yaml:"cidade"`
	Tipo         string `json:"tipo" yaml:"tipo"`
	Status       string `json:"status" yaml:"status"`
	ValorAluguel Money  `json:"valor_aluguel" yaml:"valor_aluguel"`
	AreaM2       Money  `json:"area_m2" yaml:"area_m2"`
	Quartos      int    `json:"quartos" yaml:"quartos"`
	LocadorID    ID     `json:"locador_id" yaml:"locador_id"`
	LocadorNome  string `json:"locador_nome" yaml:"locador_nome"`
}

func (i Imovel) Kind() EntityKind { return KindImovel }
func (i Imovel) EntityID() ID     { return i.ID }
func (i Imovel) DisplayName() string {
	if i.Codigo != "" && i.Endereco != "" {
		return i.Codigo + " - " + i.Endereco
	}
	if i.Endereco != "" {
		return i.Endereco
	}
	return i.Codigo
}
func (i Imovel) SearchFields() []string {
	return []string{i.Codigo, string(i.ID), i.Endereco, i.Bairro, i.Cidade, i.Tipo}
}

// Contrato is a lease contract.
type Contrato struct {
	ID             ID     `json:"id" yaml:"id"`
	Numero         string `json:"numero" yaml:"numero"`
	Tipo           string `json:"tipo" yaml:"tipo"`
	Status         string `json:"status" yaml:"status"`
	ImovelID       ID     `json:"imovel_id" yaml:"imovel_id"`
	ImovelEndereco string `json:"imovel_endereco" yaml:"imovel_endereco"`
	LocatarioID    ID     `json:"locatario_id" yaml:"locatario_id"`
	LocatarioNome  string `json:"locatario_nome" yaml:"locatario_nome"`
	LocadorID      ID     `json:"locador_id" yaml:"locador_id"`
	LocadorNome    string `json:"locador_nome" yaml:"locador_nome"`
	DataInicio     Date   `json:"data_inicio" yaml:"data_inicio"`
	DataFim        Date   `json:"data_fim" yaml:"data_fim"`
	ValorAluguel   Money  `json:"valor_aluguel" yaml:"valor_aluguel"`
	DiaVencimento  int    `json:"dia_vencimento" yaml:"dia_vencimento"`
}

func (c Contrato) Kind() EntityKind { return KindContrato }
func (c Contrato) EntityID() ID     { return c.ID }
func (c Contrato) DisplayName() string {
	if c.Numero != "" {
		return "Contrato " + c.Numero
	}
	return "Contrato " + string(c.ID)
}
func (c Contrato) SearchFields() []string {
	return []string{c.Numero, string(c.ID), c.LocatarioNome, c.LocadorNome, c.ImovelEndereco, c.Tipo}
}

// DecodeEntity decodes a backend entity record of the given kind.
func DecodeEntity(kind EntityKind, data []byte) (Entity, error) {
	switch kind {
	case KindLocador:
		var v Locador
		err := json.Unmarshal(data, &v)
		return v, err
	case KindLocatario:
		var v Locatario
		err := json.Unmarshal(data, &v)
		return v, err
	case KindImovel:
		var v Imovel
		err := json.Unmarshal(data, &v)
		return v, err
	case KindContrato:
		var v Contrato
		err := json.Unmarshal(data, &v)
		return v, err
	}
	return nil, fmt.Errorf("unknown entity kind %q", kind)
}
