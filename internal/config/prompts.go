package config

// FurniturePrompt is the default instruction for the catalog visualization pass.
const FurniturePrompt = `Преобразуй это фото в профессиональную каталожную визуализацию мебели. Современный минималистичный интерьер, фотореализм, качество 4K. Сохрани композицию, размеры и пропорции шкафов и техники, выровняй перспективу и вертикали фасадов. Сделай ровные матовые фасады без дефектов, аккуратные стыки, реалисточные материалы и текстуры. Добавь теплый мягкий боковой свет слева, естественные мягкие тени. Нейтральные стены и потолок, теплый деревянный пол, чистое окружение без лишних предметов. Стиль — интерьерная рекламная фотосъёмка для каталога мебельной фабрики, широкий угол 24–35 мм, камера на уровне глаз, идеально сбалансированная экспозиция`

// RoomIntegrationPrompt is the fixed instruction for the room integration pass.
const RoomIntegrationPrompt = `Реалистично интегрируй мебель из предыдущего результата в интерьер этой комнаты. Сохрани освещение, перспективу и пропорции комнаты. Мебель должна идеально вписаться в пространство, с правильными тенями и отражениями. Фотореализм, 4K качество, профессиональная визуализация.`
