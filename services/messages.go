package services

// Response messages, kept in the API's language.
const (
	MsgClientNotFound     = "Cliente não encontrado"
	MsgClientCPFTaken     = "CPF já cadastrado"
	MsgClientCPFInUse     = "CPF já está sendo usado por outro cliente"
	MsgClientDeleted      = "Cliente excluído com sucesso"
	MsgClientHasOrders    = "Cliente possui pedidos vinculados"
	MsgProductNotFound    = "Produto não encontrado"
	MsgProductTaken       = "Produto já cadastrado"
	MsgProductInUse       = "Descrição já está sendo usada por outro produto"
	MsgProductDeleted     = "Produto excluído com sucesso"
	MsgProductHasItems    = "Produto possui itens de pedido vinculados"
	MsgOrderNotFound      = "Pedido não encontrado"
	MsgOrderDeleted       = "Pedido excluído com sucesso"
	MsgOrderHasItems      = "Pedido possui itens vinculados"
	MsgOrderUnknownClient = "Cliente informado não existe"
	MsgItemNotFound       = "Item do Pedido não encontrado"
	MsgItemDeleted        = "Item do Pedido excluído com sucesso"
	MsgItemUnknownRef     = "Pedido ou produto informado não existe"
	MsgObjectNotFound     = "Objeto não encontrado"
	MsgObjectDeleted      = "Objeto excluído com sucesso"
)

// Entity names used in events and in "Erro ao <op> <entity>" messages.
const (
	EntityClient    = "cliente"
	EntityProduct   = "produto"
	EntityOrder     = "pedido"
	EntityOrderItem = "item do pedido"
	EntityObject    = "objeto"
)
